package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/vidtube/internal/models"
	"github.com/desertthunder/vidtube/internal/shared"
	tu "github.com/desertthunder/vidtube/internal/testing"
)

// seededDB returns a migrated database loaded with the sample catalog relative to [tu.Now].
func seededDB(t *testing.T) *sql.DB {
	t.Helper()

	db := tu.NewTestDB(t)
	seeded, err := Seed(context.Background(), db, tu.Now)
	if err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	if !seeded {
		t.Fatal("expected empty database to be seeded")
	}
	return db
}

func videoIDs(videos []*models.Video) []int64 {
	ids := make([]int64, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	return ids
}

func assertIDs(t *testing.T, got []*models.Video, want ...int64) {
	t.Helper()
	ids := videoIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Populates Empty Database", func(t *testing.T) {
		db := seededDB(t)

		channels, err := NewChannelRepository(db).Count(ctx)
		if err != nil {
			t.Fatalf("failed to count channels: %v", err)
		}
		if channels != 12 {
			t.Errorf("expected 12 channels, got %d", channels)
		}

		users, err := NewUserRepository(db).Count(ctx)
		if err != nil {
			t.Fatalf("failed to count users: %v", err)
		}
		if users != int64(len(sampleUsers)) {
			t.Errorf("expected %d users, got %d", len(sampleUsers), users)
		}

		video, err := NewVideoRepository(db).Get(ctx, 6)
		if err != nil {
			t.Fatalf("failed to get video: %v", err)
		}
		if video.Channel == nil || video.Channel.Name != "Peaceful Sounds" {
			t.Errorf("expected video 6 to belong to Peaceful Sounds, got %+v", video.Channel)
		}
		if video.VideoURL != "/api/videos/6/stream" {
			t.Errorf("unexpected video url %q", video.VideoURL)
		}
		if video.ThumbnailURL != "https://picsum.photos/640/360?random=6" {
			t.Errorf("unexpected thumbnail url %q", video.ThumbnailURL)
		}
		if want := tu.Now.Add(-30 * 24 * time.Hour); !video.CreatedAt.Equal(want) {
			t.Errorf("expected created_at %v, got %v", want, video.CreatedAt)
		}
	})

	t.Run("Is Idempotent", func(t *testing.T) {
		db := seededDB(t)

		seeded, err := Seed(ctx, db, tu.Now)
		if err != nil {
			t.Fatalf("second seed failed: %v", err)
		}
		if seeded {
			t.Error("expected second seed to be a no-op")
		}

		channels, _ := NewChannelRepository(db).Count(ctx)
		if channels != 12 {
			t.Errorf("expected 12 channels after reseed, got %d", channels)
		}
	})

	t.Run("Skips When Channels Exist", func(t *testing.T) {
		db := tu.NewTestDB(t)
		if err := NewChannelRepository(db).Create(ctx, &models.Channel{Name: "Existing"}); err != nil {
			t.Fatalf("failed to create channel: %v", err)
		}

		seeded, err := Seed(ctx, db, tu.Now)
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if seeded {
			t.Error("expected seed to skip a non-empty catalog")
		}
	})
}

func TestVideoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("List Defaults", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		page, err := repo.List(ctx, models.VideoQuery{})
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}

		if page.Total != 12 || page.Page != 1 || page.PerPage != models.DefaultPerPage {
			t.Errorf("unexpected page meta: total=%d page=%d per_page=%d", page.Total, page.Page, page.PerPage)
		}
		assertIDs(t, page.Videos, 5, 11, 3, 1, 7, 12, 4, 9, 2, 8, 10, 6)
	})

	t.Run("List Pagination", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		tests := []struct {
			name string
			page int
			want []int64
		}{
			{"second page", 2, []int64{12, 4, 9, 2, 8}},
			{"last partial page", 3, []int64{10, 6}},
			{"past the end", 4, []int64{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				page, err := repo.List(ctx, models.VideoQuery{Page: tt.page, PerPage: 5})
				if err != nil {
					t.Fatalf("failed to list: %v", err)
				}
				if page.Total != 12 {
					t.Errorf("expected total 12, got %d", page.Total)
				}
				if page.Pages() != 3 {
					t.Errorf("expected 3 pages, got %d", page.Pages())
				}
				assertIDs(t, page.Videos, tt.want...)
			})
		}
	})

	t.Run("List Filters", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		tests := []struct {
			name  string
			query models.VideoQuery
			total int
		}{
			{"category ignores case", models.VideoQuery{Category: "technology"}, 3},
			{"category substring", models.VideoQuery{Category: "tech"}, 3},
			{"category all", models.VideoQuery{Category: "ALL"}, 12},
			{"blank category", models.VideoQuery{Category: "   "}, 12},
			{"search title", models.VideoQuery{Search: "nepal"}, 1},
			{"search description", models.VideoQuery{Search: "breathtaking"}, 1},
			{"search does not match channel", models.VideoQuery{Search: "CodeMaster"}, 0},
			{"category and search", models.VideoQuery{Category: "Technology", Search: "AI"}, 1},
			{"wildcards are literal", models.VideoQuery{Search: "%"}, 0},
			{"unknown category", models.VideoQuery{Category: "Knitting"}, 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				page, err := repo.List(ctx, tt.query)
				if err != nil {
					t.Fatalf("failed to list: %v", err)
				}
				if page.Total != tt.total {
					t.Errorf("expected total %d, got %d", tt.total, page.Total)
				}
				if len(page.Videos) != tt.total {
					t.Errorf("expected %d videos, got %d", tt.total, len(page.Videos))
				}
			})
		}
	})

	t.Run("Get", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		video, err := repo.Get(ctx, 1)
		if err != nil {
			t.Fatalf("failed to get video: %v", err)
		}
		if video.Views != 2300000 {
			t.Errorf("expected Get to leave views untouched, got %d", video.Views)
		}

		if _, err := repo.Get(ctx, 999); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("RecordView", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		video, err := repo.RecordView(ctx, 1)
		if err != nil {
			t.Fatalf("failed to record view: %v", err)
		}
		if video.Views != 2300001 {
			t.Errorf("expected 2300001 views, got %d", video.Views)
		}
		if video.Channel == nil || video.Channel.Name != "Nature Explorer" {
			t.Errorf("expected channel attached, got %+v", video.Channel)
		}

		again, err := repo.RecordView(ctx, 1)
		if err != nil {
			t.Fatalf("failed to record view: %v", err)
		}
		if again.Views != 2300002 {
			t.Errorf("expected 2300002 views, got %d", again.Views)
		}

		if _, err := repo.RecordView(ctx, 999); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Like", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		likes, err := repo.Like(ctx, 1)
		if err != nil {
			t.Fatalf("failed to like: %v", err)
		}
		if likes != 45001 {
			t.Errorf("expected 45001 likes, got %d", likes)
		}

		video, _ := repo.Get(ctx, 1)
		if video.Views != 2300000 {
			t.Errorf("expected like to leave views untouched, got %d", video.Views)
		}

		if _, err := repo.Like(ctx, 999); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Concurrent Likes", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		const n = 10
		errs := make(chan error, n)
		for range n {
			go func() {
				_, err := repo.Like(ctx, 2)
				errs <- err
			}()
		}
		for range n {
			if err := <-errs; err != nil {
				t.Fatalf("concurrent like failed: %v", err)
			}
		}

		video, _ := repo.Get(ctx, 2)
		if video.Likes != 23000+n {
			t.Errorf("expected %d likes, got %d", 23000+n, video.Likes)
		}
	})

	t.Run("Trending", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		videos, err := repo.Trending(ctx, tu.Now.Add(-7*24*time.Hour), models.TrendingLimit)
		if err != nil {
			t.Fatalf("failed to get trending: %v", err)
		}
		assertIDs(t, videos, 5, 11, 1, 3, 7, 9, 2, 4, 12)

		limited, err := repo.Trending(ctx, tu.Now.Add(-7*24*time.Hour), 3)
		if err != nil {
			t.Fatalf("failed to get trending: %v", err)
		}
		assertIDs(t, limited, 5, 11, 1)
	})

	t.Run("Search", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		tests := []struct {
			name string
			term string
			want []int64
		}{
			{"channel name", "codemaster", []int64{2}},
			{"title", "NEPAL", []int64{10}},
			{"ordered by views", "tech", []int64{5, 11}},
			{"blank", "  ", []int64{}},
			{"no match", "zzz", []int64{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				videos, err := repo.Search(ctx, tt.term)
				if err != nil {
					t.Fatalf("search failed: %v", err)
				}
				assertIDs(t, videos, tt.want...)
			})
		}
	})

	t.Run("Categories", func(t *testing.T) {
		repo := NewVideoRepository(seededDB(t))

		categories, err := repo.Categories(ctx)
		if err != nil {
			t.Fatalf("failed to get categories: %v", err)
		}

		want := []string{"Art", "Entertainment", "Fitness", "Food", "Gaming", "Music", "Nature", "Science", "Technology", "Travel"}
		if len(categories) != len(want) {
			t.Fatalf("expected %v, got %v", want, categories)
		}
		for i := range want {
			if categories[i] != want[i] {
				t.Errorf("expected %v, got %v", want, categories)
				break
			}
		}
	})

	t.Run("Create", func(t *testing.T) {
		db := tu.NewTestDB(t)
		channel := &models.Channel{Name: "Solo"}
		if err := NewChannelRepository(db).Create(ctx, channel); err != nil {
			t.Fatalf("failed to create channel: %v", err)
		}

		repo := NewVideoRepository(db)
		video := &models.Video{Title: "First", ChannelID: channel.ID}
		if err := repo.Create(ctx, video); err != nil {
			t.Fatalf("failed to create video: %v", err)
		}
		if video.ID == 0 {
			t.Error("video ID should be set after creation")
		}
		if video.CreatedAt.IsZero() {
			t.Error("created_at should default to now")
		}

		got, err := repo.Get(ctx, video.ID)
		if err != nil {
			t.Fatalf("failed to get video: %v", err)
		}
		if got.Description != "" || got.Category != "" {
			t.Errorf("expected empty optional fields, got %+v", got)
		}

		if err := repo.Create(ctx, &models.Video{Title: "Orphan", ChannelID: 999}); err == nil {
			t.Error("expected foreign key error for unknown channel")
		}

		if err := repo.Create(ctx, &models.Video{ChannelID: channel.ID}); !errors.Is(err, models.ErrInvalidModel) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestChannelRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		repo := NewChannelRepository(seededDB(t))

		channels, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("failed to list channels: %v", err)
		}
		if len(channels) != 12 {
			t.Fatalf("expected 12 channels, got %d", len(channels))
		}

		first := channels[0]
		if first.Name != "Nature Explorer" || first.Subscribers != 2300000 || first.VideoCount != 1 {
			t.Errorf("unexpected first channel: %+v", first)
		}
		if first.AvatarURL != "https://picsum.photos/50/50?random=100" {
			t.Errorf("unexpected avatar url %q", first.AvatarURL)
		}
		if channels[11].Name != "Urban Artist" {
			t.Errorf("expected last channel Urban Artist, got %s", channels[11].Name)
		}
	})

	t.Run("List Counts Zero Videos", func(t *testing.T) {
		repo := NewChannelRepository(tu.NewTestDB(t))
		if err := repo.Create(ctx, &models.Channel{Name: "Empty"}); err != nil {
			t.Fatalf("failed to create channel: %v", err)
		}

		channels, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("failed to list channels: %v", err)
		}
		if len(channels) != 1 || channels[0].VideoCount != 0 {
			t.Errorf("expected one channel with zero videos, got %+v", channels)
		}
	})

	t.Run("List Empty", func(t *testing.T) {
		channels, err := NewChannelRepository(tu.NewTestDB(t)).List(ctx)
		if err != nil {
			t.Fatalf("failed to list channels: %v", err)
		}
		if channels == nil || len(channels) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", channels)
		}
	})

	t.Run("Create Invalid", func(t *testing.T) {
		repo := NewChannelRepository(tu.NewTestDB(t))
		if err := repo.Create(ctx, &models.Channel{Name: " "}); !errors.Is(err, models.ErrInvalidModel) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create And Get", func(t *testing.T) {
		repo := NewUserRepository(tu.NewTestDB(t))
		user := &models.User{Username: "alice", Email: "alice@example.com"}

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
		if user.ID == 0 {
			t.Error("user ID should be set after creation")
		}

		got, err := repo.GetByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("failed to get user: %v", err)
		}
		if got.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, got.Email)
		}
	})

	t.Run("Unique Username And Email", func(t *testing.T) {
		repo := NewUserRepository(tu.NewTestDB(t))
		if err := repo.Create(ctx, &models.User{Username: "alice", Email: "alice@example.com"}); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}

		if err := repo.Create(ctx, &models.User{Username: "alice", Email: "other@example.com"}); err == nil {
			t.Error("expected duplicate username to fail")
		}
		if err := repo.Create(ctx, &models.User{Username: "bob", Email: "alice@example.com"}); err == nil {
			t.Error("expected duplicate email to fail")
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := NewUserRepository(tu.NewTestDB(t))
		if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestStatsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeded", func(t *testing.T) {
		stats, err := NewStatsRepository(seededDB(t)).Totals(ctx)
		if err != nil {
			t.Fatalf("failed to get stats: %v", err)
		}

		want := models.PlatformStats{TotalVideos: 12, TotalChannels: 12, TotalViews: 24956000, TotalLikes: 784000}
		if *stats != want {
			t.Errorf("expected %+v, got %+v", want, *stats)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		stats, err := NewStatsRepository(tu.NewTestDB(t)).Totals(ctx)
		if err != nil {
			t.Fatalf("failed to get stats: %v", err)
		}
		if *stats != (models.PlatformStats{}) {
			t.Errorf("expected zero stats, got %+v", *stats)
		}
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	db := tu.NewTestDB(t)

	boom := errors.New("boom")
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := insertChannel(ctx, tx, &models.Channel{Name: "Rolled Back"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	n, _ := NewChannelRepository(db).Count(ctx)
	if n != 0 {
		t.Errorf("expected rollback to discard the insert, got %d channels", n)
	}
}

func TestContainsPattern(t *testing.T) {
	tests := []struct{ in, want string }{
		{"abc", "%abc%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`c:\`, `%c:\\%`},
	}
	for _, tt := range tests {
		if got := containsPattern(tt.in); got != tt.want {
			t.Errorf("containsPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
