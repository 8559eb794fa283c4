package formatter

import (
	"time"

	"github.com/desertthunder/vidtube/internal/models"
)

// Video builds the JSON view of v. The relative time is computed against now.
func Video(v *models.Video, now time.Time) models.VideoResponse {
	resp := models.VideoResponse{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		ThumbnailURL:   v.ThumbnailURL,
		VideoURL:       v.VideoURL,
		Duration:       v.Duration,
		Views:          v.Views,
		ViewsFormatted: FormatViews(v.Views),
		Likes:          v.Likes,
		Dislikes:       v.Dislikes,
		Category:       v.Category,
		TimeAgo:        FormatTimeAgo(v.CreatedAt, now),
		Channel:        models.ChannelRef{ID: v.ChannelID},
	}

	if c := v.Channel; c != nil {
		resp.Channel = models.ChannelRef{
			ID:          c.ID,
			Name:        c.Name,
			AvatarURL:   c.AvatarURL,
			Subscribers: c.Subscribers,
		}
	}

	return resp
}

// Videos builds JSON views for a list. The result is never nil so it encodes as [].
func Videos(videos []*models.Video, now time.Time) []models.VideoResponse {
	out := make([]models.VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, Video(v, now))
	}
	return out
}

// VideoList builds the paginated listing body for page.
func VideoList(page *models.VideoPage, now time.Time) models.VideoListResponse {
	return models.VideoListResponse{
		Videos:      Videos(page.Videos, now),
		Total:       page.Total,
		Pages:       page.Pages(),
		CurrentPage: page.Page,
		HasNext:     page.HasNext(),
		HasPrev:     page.HasPrev(),
	}
}

// Channel builds the JSON view of c.
func Channel(c *models.Channel) models.ChannelResponse {
	return models.ChannelResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		AvatarURL:            c.AvatarURL,
		Subscribers:          c.Subscribers,
		SubscribersFormatted: FormatViews(c.Subscribers),
		VideoCount:           c.VideoCount,
	}
}

// Channels builds JSON views for a list of channels; never nil.
func Channels(channels []*models.Channel) []models.ChannelResponse {
	out := make([]models.ChannelResponse, 0, len(channels))
	for _, c := range channels {
		out = append(out, Channel(c))
	}
	return out
}

// Categories prepends the synthetic "All" entry to the sorted category list.
func Categories(sorted []string) []string {
	return append([]string{models.AllCategories}, sorted...)
}

// Stats builds the platform stats body with formatted totals.
func Stats(s *models.PlatformStats) models.StatsResponse {
	return models.StatsResponse{
		TotalVideos:         s.TotalVideos,
		TotalChannels:       s.TotalChannels,
		TotalViews:          s.TotalViews,
		TotalViewsFormatted: FormatViews(s.TotalViews),
		TotalLikes:          s.TotalLikes,
		TotalLikesFormatted: FormatViews(s.TotalLikes),
	}
}
