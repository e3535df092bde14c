package trending

import (
	"context"
	"time"

	"github.com/launchdeck/launchdeck/internal/domain"
	"github.com/launchdeck/launchdeck/internal/pkg/dates"
)

// TopLimit caps how many products a daily snapshot holds.
const TopLimit = 50

// fallbackCreator is recorded when a product document carries no creator username.
const fallbackCreator = "Unknown"

// BuildResult identifies the snapshot written by Build.
type BuildResult struct {
	SnapshotID string `json:"snapshotId"`
	Count      int    `json:"count"`
}

type Service interface {
	// Build computes the ranking of published products launched on the UTC
	// calendar day containing target, and upserts the snapshot under that
	// date's YYYY-MM-DD key. Any date, past or future, is legal; an empty
	// window yields a valid zero-entry snapshot.
	Build(ctx context.Context, target time.Time) (BuildResult, error)
	// Get reads a previously built snapshot for the UTC calendar day of target.
	Get(ctx context.Context, target time.Time) (*domain.RankingSnapshot, error)
}

type productQuerier interface {
	QueryLaunchedBetween(ctx context.Context, start, end time.Time, limit int32) ([]domain.Product, error)
}

type rankingStore interface {
	UpsertMerge(ctx context.Context, snap *domain.RankingSnapshot) error
	Get(ctx context.Context, dateID string) (*domain.RankingSnapshot, error)
}

type service struct {
	products productQuerier
	rankings rankingStore
	now      func() time.Time
}

func NewService(products productQuerier, rankings rankingStore) Service {
	return &service{products: products, rankings: rankings, now: time.Now}
}

func (s *service) Build(ctx context.Context, target time.Time) (BuildResult, error) {
	start, end := dates.DayWindow(target)

	products, err := s.products.QueryLaunchedBetween(ctx, start, end, TopLimit)
	if err != nil {
		return BuildResult{}, err
	}

	entries := make([]domain.RankingEntry, 0, len(products))
	for i, p := range products {
		creator := p.Creator.Username
		if creator == "" {
			creator = fallbackCreator
		}
		entries = append(entries, domain.RankingEntry{
			ProductID:         p.ProductID,
			Rank:              i + 1,
			UpvoteCount:       p.UpvoteCount,
			ProductName:       p.Name,
			ProductTagline:    p.Tagline,
			ProductLogo:       p.Logo,
			CreatorUsername:   creator,
			ProductLaunchDate: p.LaunchDate,
		})
	}

	snap := &domain.RankingSnapshot{
		DateID:        dates.DayKey(start),
		Date:          start,
		GeneratedAt:   s.now().UTC(),
		Period:        "daily",
		TopProducts:   entries,
		TotalProducts: len(entries),
	}
	if err := s.rankings.UpsertMerge(ctx, snap); err != nil {
		return BuildResult{}, err
	}
	return BuildResult{SnapshotID: snap.DateID, Count: snap.TotalProducts}, nil
}

func (s *service) Get(ctx context.Context, target time.Time) (*domain.RankingSnapshot, error) {
	return s.rankings.Get(ctx, dates.DayKey(target))
}
