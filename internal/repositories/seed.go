package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/vidtube/internal/models"
)

type seedChannel struct {
	name        string
	subscribers int64
}

type seedVideo struct {
	title       string
	description string
	duration    string
	views       int64
	likes       int64
	category    string
	daysAgo     int
	thumbnailID int
}

var sampleChannels = []seedChannel{
	{"Nature Explorer", 2300000},
	{"CodeMaster", 856000},
	{"Gaming Pro", 1800000},
	{"Culinary Arts", 654000},
	{"Tech News Daily", 3100000},
	{"Peaceful Sounds", 4200000},
	{"Space Science", 1500000},
	{"Pet Comedy", 5700000},
	{"Fitness Plus", 923000},
	{"Adventure Seeker", 678000},
	{"Future Tech", 2800000},
	{"Urban Artist", 445000},
}

// sampleVideos[i] belongs to sampleChannels[i].
var sampleVideos = []seedVideo{
	{
		title:       "Amazing Nature Documentary: Wildlife in 4K",
		description: "Explore the stunning wildlife of our planet in breathtaking 4K resolution.",
		duration:    "15:42", views: 2300000, likes: 45000, category: "Nature", daysAgo: 3, thumbnailID: 1,
	},
	{
		title:       "Top 10 JavaScript Tips Every Developer Should Know",
		description: "Essential JavaScript tips that will make you a better developer.",
		duration:    "12:15", views: 856000, likes: 23000, category: "Technology", daysAgo: 7, thumbnailID: 2,
	},
	{
		title:       "Epic Gaming Montage - Best Moments 2025",
		description: "The most epic gaming moments from this year compiled into one amazing video.",
		duration:    "8:33", views: 1800000, likes: 67000, category: "Gaming", daysAgo: 2, thumbnailID: 3,
	},
	{
		title:       "Cooking the Perfect Pasta: Italian Chef's Secret",
		description: "Learn the authentic Italian way to cook pasta from a master chef.",
		duration:    "18:22", views: 654000, likes: 18000, category: "Food", daysAgo: 5, thumbnailID: 4,
	},
	{
		title:       "Breaking: Latest Technology Trends 2025",
		description: "Stay updated with the latest technology trends shaping our future.",
		duration:    "22:17", views: 3100000, likes: 89000, category: "Technology", daysAgo: 0, thumbnailID: 5,
	},
	{
		title:       "Relaxing Music for Study and Work - 2 Hours",
		description: "Perfect background music for productivity and focus.",
		duration:    "2:15:33", views: 4200000, likes: 125000, category: "Music", daysAgo: 30, thumbnailID: 6,
	},
	{
		title:       "Space Exploration: Mars Mission Updates",
		description: "Latest updates from the Mars exploration missions.",
		duration:    "25:48", views: 1500000, likes: 42000, category: "Science", daysAgo: 4, thumbnailID: 7,
	},
	{
		title:       "Funny Cat Compilation - Try Not to Laugh",
		description: "The funniest cat videos that will make your day better.",
		duration:    "10:05", views: 5700000, likes: 234000, category: "Entertainment", daysAgo: 14, thumbnailID: 8,
	},
	{
		title:       "Workout at Home: 30 Minute Full Body",
		description: "Complete full-body workout you can do at home with no equipment.",
		duration:    "31:42", views: 923000, likes: 31000, category: "Fitness", daysAgo: 7, thumbnailID: 9,
	},
	{
		title:       "Travel Vlog: Hidden Gems in Nepal",
		description: "Discover the most beautiful hidden places in Nepal.",
		duration:    "16:28", views: 678000, likes: 19000, category: "Travel", daysAgo: 21, thumbnailID: 10,
	},
	{
		title:       "AI Revolution: What's Coming Next?",
		description: "Exploring the future of artificial intelligence and its impact.",
		duration:    "19:13", views: 2800000, likes: 76000, category: "Technology", daysAgo: 1, thumbnailID: 11,
	},
	{
		title:       "Street Art Time-lapse: Creating a Masterpiece",
		description: "Watch an incredible street art piece come to life in time-lapse.",
		duration:    "7:52", views: 445000, likes: 15000, category: "Art", daysAgo: 5, thumbnailID: 12,
	},
}

var sampleUsers = []models.User{
	{Username: "demo", Email: "demo@example.com"},
	{Username: "viewer", Email: "viewer@example.com"},
}

// Seed populates an empty catalog with sample channels, videos and users.
//
// It does nothing and returns false when any channel already exists, so it is safe to call on every start.
// Video timestamps are computed relative to now.
func Seed(ctx context.Context, db *sql.DB, now time.Time) (bool, error) {
	now = now.UTC()
	seeded := false

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM channels)").Scan(&exists); err != nil {
			return fmt.Errorf("failed to check for existing data: %w", err)
		}
		if exists {
			return nil
		}

		channels := make([]*models.Channel, len(sampleChannels))
		for i, sc := range sampleChannels {
			channels[i] = &models.Channel{
				Name:        sc.name,
				AvatarURL:   fmt.Sprintf("https://picsum.photos/50/50?random=%d", 100+i),
				Subscribers: sc.subscribers,
				CreatedAt:   now,
			}
			if err := insertChannel(ctx, tx, channels[i]); err != nil {
				return err
			}
		}

		for i, sv := range sampleVideos {
			video := &models.Video{
				Title:        sv.title,
				Description:  sv.description,
				ThumbnailURL: fmt.Sprintf("https://picsum.photos/640/360?random=%d", sv.thumbnailID),
				VideoURL:     fmt.Sprintf("/api/videos/%d/stream", i+1),
				Duration:     sv.duration,
				Views:        sv.views,
				Likes:        sv.likes,
				Category:     sv.category,
				CreatedAt:    now.Add(-time.Duration(sv.daysAgo) * 24 * time.Hour),
				ChannelID:    channels[i].ID,
			}
			if err := insertVideo(ctx, tx, video); err != nil {
				return err
			}
		}

		for _, u := range sampleUsers {
			user := u
			user.CreatedAt = now
			if err := insertUser(ctx, tx, &user); err != nil {
				return err
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed database: %w", err)
	}
	return seeded, nil
}
