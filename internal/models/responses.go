package models

// ChannelRef is the channel summary embedded in every [VideoResponse].
type ChannelRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Subscribers int64  `json:"subscribers"`
}

// VideoResponse is the JSON form of a [Video] with derived display fields.
type VideoResponse struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ThumbnailURL   string     `json:"thumbnail_url"`
	VideoURL       string     `json:"video_url"`
	Duration       string     `json:"duration"`
	Views          int64      `json:"views"`
	ViewsFormatted string     `json:"views_formatted"`
	Likes          int64      `json:"likes"`
	Dislikes       int64      `json:"dislikes"`
	Category       string     `json:"category"`
	TimeAgo        string     `json:"time_ago"`
	Channel        ChannelRef `json:"channel"`
}

// ChannelResponse is the JSON form of a [Channel] in listings.
type ChannelResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	AvatarURL            string `json:"avatar_url"`
	Subscribers          int64  `json:"subscribers"`
	SubscribersFormatted string `json:"subscribers_formatted"`
	VideoCount           int    `json:"video_count"`
}

// VideoListResponse is returned by GET /api/videos.
type VideoListResponse struct {
	Videos      []VideoResponse `json:"videos"`
	Total       int             `json:"total"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
	HasNext     bool            `json:"has_next"`
	HasPrev     bool            `json:"has_prev"`
}

// VideosResponse wraps an unpaginated video list (trending, search).
type VideosResponse struct {
	Videos []VideoResponse `json:"videos"`
}

// ChannelsResponse is returned by GET /api/channels.
type ChannelsResponse struct {
	Channels []ChannelResponse `json:"channels"`
}

// CategoriesResponse is returned by GET /api/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// LikeResponse is returned by POST /api/videos/{id}/like.
type LikeResponse struct {
	Success bool  `json:"success"`
	Likes   int64 `json:"likes"`
	VideoID int64 `json:"video_id"`
}

// StatsResponse is returned by GET /api/stats.
type StatsResponse struct {
	TotalVideos         int64  `json:"total_videos"`
	TotalChannels       int64  `json:"total_channels"`
	TotalViews          int64  `json:"total_views"`
	TotalViewsFormatted string `json:"total_views_formatted"`
	TotalLikes          int64  `json:"total_likes"`
	TotalLikesFormatted string `json:"total_likes_formatted"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
