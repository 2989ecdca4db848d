package forum

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"forumhub/internal/model"
)

// MemberSort selects the ordering of the member directory.
type MemberSort string

const (
	SortReputation MemberSort = "reputation" // highest first
	SortName       MemberSort = "name"       // alphabetical
	SortNewest     MemberSort = "newest"     // most recent joinedAt first
)

// TopContributorReputation is the reputation a member must exceed to count
// as a top contributor.
const TopContributorReputation = 5000

// RoleAll disables role filtering.
const RoleAll = "All"

// MemberQuery filters and orders ListMembers.
type MemberQuery struct {
	// Search matches name or username, ignoring case.
	Search string
	// Role keeps members whose role contains this text. Empty or RoleAll
	// keeps everyone.
	Role string
	// Sort defaults to SortReputation.
	Sort MemberSort
}

// UserUpdate carries settings changes for the current user.
// Empty fields leave the stored value unchanged.
type UserUpdate struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

// UserRepository serves the member directory and the current user record.
type UserRepository struct {
	store  Store
	logger Logger
}

func NewUserRepository(store Store, logger Logger) *UserRepository {
	return &UserRepository{store: store, logger: logger}
}

// ListMembers returns the member directory filtered and sorted by q.
func (r *UserRepository) ListMembers(ctx context.Context, q MemberQuery) ([]model.User, error) {
	members, err := r.members(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.User, 0, len(members))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, m := range members {
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Username), search) {
			continue
		}
		if q.Role != "" && q.Role != RoleAll && !strings.Contains(m.Role, q.Role) {
			continue
		}
		result = append(result, m)
	}

	switch q.Sort {
	case SortName:
		slices.SortStableFunc(result, func(a, b model.User) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case SortNewest:
		slices.SortStableFunc(result, func(a, b model.User) int {
			return cmp.Compare(b.JoinedAt, a.JoinedAt)
		})
	default:
		slices.SortStableFunc(result, func(a, b model.User) int {
			return cmp.Compare(b.Reputation, a.Reputation)
		})
	}
	return result, nil
}

// TopContributors counts members with more than TopContributorReputation.
func (r *UserRepository) TopContributors(ctx context.Context) (int, error) {
	members, err := r.members(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range members {
		if m.Reputation > TopContributorReputation {
			n++
		}
	}
	return n, nil
}

// CurrentUser returns the stored current user record.
func (r *UserRepository) CurrentUser(ctx context.Context) (model.User, error) {
	return Load(ctx, r.store, KeyCurrentUser, seedCurrentUser())
}

// UpdateCurrentUser applies u to the current user and returns the result.
func (r *UserRepository) UpdateCurrentUser(ctx context.Context, u UserUpdate) (model.User, error) {
	user, err := r.CurrentUser(ctx)
	if err != nil {
		return model.User{}, err
	}

	if v := strings.TrimSpace(u.Name); v != "" {
		user.Name = v
	}
	if v := strings.TrimSpace(u.Username); v != "" {
		user.Username = v
	}
	if v := strings.TrimSpace(u.Role); v != "" {
		user.Role = v
	}
	if v := strings.TrimSpace(u.Avatar); v != "" {
		user.Avatar = v
	}

	if err := Save(ctx, r.store, KeyCurrentUser, user); err != nil {
		return model.User{}, err
	}
	r.logger.Info("current user updated", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Session loads the current user into a new Session. Later changes to the
// stored record are not reflected in the returned session.
func (r *UserRepository) Session(ctx context.Context) (*Session, error) {
	user, err := r.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return NewSession(user), nil
}

func (r *UserRepository) members(ctx context.Context) ([]model.User, error) {
	return Load(ctx, r.store, KeyUsers, seedMembers())
}
