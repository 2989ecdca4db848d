package forum

import (
	"context"
	"math"

	"forumhub/internal/model"
)

// BadgeSummary describes how much of the catalogue has been earned.
type BadgeSummary struct {
	Earned     int `json:"earned"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// BadgeRepository reads the badge catalogue. The catalogue is never mutated.
type BadgeRepository struct {
	store Store
}

func NewBadgeRepository(store Store) *BadgeRepository {
	return &BadgeRepository{store: store}
}

// ListBadges returns badges in category, or all of them when category is
// empty or "All".
func (r *BadgeRepository) ListBadges(ctx context.Context, category string) ([]model.Badge, error) {
	badges, err := Load(ctx, r.store, KeyBadges, seedBadges())
	if err != nil {
		return nil, err
	}
	if category == "" || category == "All" {
		return badges, nil
	}

	result := []model.Badge{}
	for _, b := range badges {
		if string(b.Category) == category {
			result = append(result, b)
		}
	}
	return result, nil
}

// Summary counts earned badges across the whole catalogue.
func (r *BadgeRepository) Summary(ctx context.Context) (BadgeSummary, error) {
	badges, err := r.ListBadges(ctx, "")
	if err != nil {
		return BadgeSummary{}, err
	}
	return Summarize(badges), nil
}

// Summarize computes a BadgeSummary; an empty list yields 0%.
func Summarize(badges []model.Badge) BadgeSummary {
	s := BadgeSummary{Total: len(badges)}
	for _, b := range badges {
		if b.IsEarned {
			s.Earned++
		}
	}
	s.Percentage = int(math.Round(float64(s.Earned) / float64(max(s.Total, 1)) * 100))
	return s
}
