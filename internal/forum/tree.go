package forum

import "forumhub/internal/model"

// CountComments returns the number of nodes in the forest at every depth.
// Replies count the same as root comments.
func CountComments(forest []model.Comment) int {
	n := 0
	for i := range forest {
		n += 1 + CountComments(forest[i].Replies)
	}
	return n
}

// FindComment searches the forest depth-first in pre-order and returns a
// pointer to the first node whose id matches. Each root's subtree is searched
// fully before the next root; later duplicates are never reached.
// The pointer aliases the forest, so appending to its Replies mutates the tree.
func FindComment(forest []model.Comment, id string) *model.Comment {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
		if c := FindComment(forest[i].Replies, id); c != nil {
			return c
		}
	}
	return nil
}

// appendReply attaches reply under the first node matching parentID.
// It reports false, leaving the forest untouched, if no node matches.
func appendReply(forest []model.Comment, parentID string, reply model.Comment) bool {
	parent := FindComment(forest, parentID)
	if parent == nil {
		return false
	}
	parent.Replies = append(parent.Replies, reply)
	return true
}
