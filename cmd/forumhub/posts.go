package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forumhub/internal/app"
	"forumhub/internal/forum"
	"forumhub/internal/model"
	"forumhub/internal/tagging"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Read and write posts",
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	RunE: withApp("post list", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		feed, _ := cmd.Flags().GetString("feed")
		category, _ := cmd.Flags().GetString("category")
		query, _ := cmd.Flags().GetString("query")

		var (
			posts []model.Post
			err   error
		)
		if forum.Feed(feed) == forum.FeedBookmarks {
			posts, err = a.Posts().ListBookmarkedPosts(ctx)
		} else {
			posts, err = a.Posts().ListPosts(ctx)
		}
		if err != nil {
			return err
		}

		posts = forum.FilterByCategory(posts, category)
		posts = forum.FilterPosts(posts, query)
		posts = forum.SortPosts(posts, forum.Feed(feed))
		if len(posts) == 0 {
			fmt.Println("No posts found.")
			return nil
		}
		for _, p := range posts {
			printPostLine(p)
		}
		return nil
	}),
}

var postShowCmd = &cobra.Command{
	Use:   "show POST_ID",
	Short: "Show a post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: withApp("post show", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		p, err := a.Posts().GetPostByID(ctx, args[0])
		if err != nil {
			return err
		}
		bookmarked, err := a.Posts().IsBookmarked(ctx, p.ID)
		if err != nil {
			return err
		}
		printPost(p, bookmarked)
		return nil
	}),
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	RunE: withApp("post create", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()
		title, _ := flags.GetString("title")
		body, _ := flags.GetString("body")
		category, _ := flags.GetString("category")
		tags, _ := flags.GetStringSlice("tag")
		suggest, _ := flags.GetBool("suggest")

		if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
			return fmt.Errorf("--title and --body are required")
		}
		if suggest {
			tags = tagging.MergeTags(tags, a.Tagger().SuggestTags(ctx, title, body))
		}
		if len(forum.NormalizeTags(tags)) > forum.MaxTags {
			return fmt.Errorf("at most %d tags allowed", forum.MaxTags)
		}

		session, err := a.Session(ctx)
		if err != nil {
			return err
		}
		p, err := a.Posts().CreatePost(ctx, session, title, body, category, tags)
		if err != nil {
			return err
		}
		fmt.Printf("Created post %s\n", p.ID)
		return nil
	}),
}

func voteCmd(use, short string, delta int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " POST_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: withApp("post "+use, func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
			ctx := cmd.Context()
			total, err := a.Posts().UpvotePost(ctx, args[0], delta)
			if err != nil {
				return err
			}
			fmt.Printf("Post %s now has %d votes\n", args[0], total)
			return nil
		}),
	}
}

var postBookmarkCmd = &cobra.Command{
	Use:   "bookmark POST_ID",
	Short: "Toggle a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: withApp("post bookmark", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		on, err := a.Posts().ToggleBookmark(ctx, args[0])
		if err != nil {
			return err
		}
		if on {
			fmt.Printf("Bookmarked post %s\n", args[0])
		} else {
			fmt.Printf("Removed bookmark on post %s\n", args[0])
		}
		return nil
	}),
}

var commentCmd = &cobra.Command{
	Use:   "comment POST_ID TEXT",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE: withApp("comment", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		session, err := a.Session(ctx)
		if err != nil {
			return err
		}
		c, err := a.Posts().AddComment(ctx, session, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Added comment %s\n", c.ID)
		return nil
	}),
}

var replyCmd = &cobra.Command{
	Use:   "reply POST_ID COMMENT_ID TEXT",
	Short: "Reply to a comment",
	Args:  cobra.ExactArgs(3),
	RunE: withApp("reply", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		session, err := a.Session(ctx)
		if err != nil {
			return err
		}
		c, err := a.Posts().AddReply(ctx, session, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Added reply %s\n", c.ID)
		return nil
	}),
}

func init() {
	postListCmd.Flags().String("feed", "", "Feed: trending, new or bookmarks")
	postListCmd.Flags().String("category", "", "Only show this category")
	postListCmd.Flags().StringP("query", "q", "", "Search title, body, tags and author")

	postCreateCmd.Flags().String("title", "", "Post title")
	postCreateCmd.Flags().String("body", "", "Post body")
	postCreateCmd.Flags().String("category", "General", "Engineering, Design, Performance or General")
	postCreateCmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	postCreateCmd.Flags().Bool("suggest", false, "Merge in AI suggested tags")

	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(voteCmd("upvote", "Upvote a post", 1))
	postCmd.AddCommand(voteCmd("downvote", "Downvote a post", -1))
	postCmd.AddCommand(postBookmarkCmd)

	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(replyCmd)
}
