package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vidtube/internal/formatter"
	"github.com/desertthunder/vidtube/internal/models"
)

const trendingWindow = 7 * 24 * time.Hour

// VideoStore is the video persistence the API needs.
type VideoStore interface {
	List(ctx context.Context, q models.VideoQuery) (*models.VideoPage, error)
	RecordView(ctx context.Context, id int64) (*models.Video, error)
	Like(ctx context.Context, id int64) (int64, error)
	Trending(ctx context.Context, since time.Time, limit int) ([]*models.Video, error)
	Search(ctx context.Context, term string) ([]*models.Video, error)
	Categories(ctx context.Context) ([]string, error)
}

// ChannelStore lists channels with their video counts.
type ChannelStore interface {
	List(ctx context.Context) ([]*models.Channel, error)
}

// StatsStore computes catalog-wide totals.
type StatsStore interface {
	Totals(ctx context.Context) (*models.PlatformStats, error)
}

// Route is one registered API endpoint.
type Route struct {
	Method      string
	Path        string
	Description string
	handler     http.HandlerFunc
}

// APIOpts configures [NewAPI]. Now defaults to [time.Now] and MaxPerPage to 100.
type APIOpts struct {
	Videos     VideoStore
	Channels   ChannelStore
	Stats      StatsStore
	Logger     *log.Logger
	Now        func() time.Time
	MaxPerPage int
}

// API serves the JSON catalog endpoints.
type API struct {
	videos     VideoStore
	channels   ChannelStore
	stats      StatsStore
	logger     *log.Logger
	now        func() time.Time
	maxPerPage int
}

// NewAPI creates an [API] backed by the given stores.
func NewAPI(opts APIOpts) *API {
	a := &API{
		videos:     opts.Videos,
		channels:   opts.Channels,
		stats:      opts.Stats,
		logger:     opts.Logger,
		now:        opts.Now,
		maxPerPage: opts.MaxPerPage,
	}

	if a.now == nil {
		a.now = time.Now
	}
	if a.maxPerPage <= 0 {
		a.maxPerPage = 100
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	return a
}

// Routes lists every endpoint in registration order.
func (a *API) Routes() []Route {
	return []Route{
		{http.MethodGet, "/api/videos", "List videos (category, search, page, per_page)", a.listVideos},
		{http.MethodGet, "/api/videos/{id}", "Get a video and count a view", a.getVideo},
		{http.MethodPost, "/api/videos/{id}/like", "Like a video", a.likeVideo},
		{http.MethodGet, "/api/channels", "List channels", a.listChannels},
		{http.MethodGet, "/api/categories", "List categories", a.listCategories},
		{http.MethodGet, "/api/trending", "Most viewed videos of the last 7 days", a.trending},
		{http.MethodGet, "/api/search", "Search videos and channels (q)", a.search},
		{http.MethodGet, "/api/stats", "Platform statistics", a.platformStats},
		{http.MethodGet, "/api/health", "Health check", a.health},
	}
}

// Register adds every [API.Routes] entry to r.
//
// [http.ServeMux] also routes HEAD to GET patterns, so each GET path gets an explicit HEAD 404.
// Without it a HEAD on /api/videos/{id} would count a view.
func (a *API) Register(r Router) {
	for _, route := range a.Routes() {
		r.Handle(route.Method, route.Path, route.handler)
		if route.Method == http.MethodGet {
			r.Handle(http.MethodHead, route.Path, NotFoundHandler{})
		}
	}
}

// NewRouter builds the full HTTP handler: middleware, catalog routes and the JSON 404 fallback.
func NewRouter(api *API, logger *log.Logger, origins []string) *BasicRouter {
	r := NewBasicRouter()
	r.Use(RequestID(), Logging(logger), Recover(logger), CORS(origins))
	api.Register(r)
	r.Handler(NotFoundHandler{})
	return r
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		a.logger.Error("request failed", "error", err, "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
	}
	writeError(w, status, msg)
}

func (a *API) listVideos(w http.ResponseWriter, r *http.Request) {
	q, err := parseVideoQuery(r.URL.Query(), a.maxPerPage)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	page, err := a.videos.List(r.Context(), q)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, formatter.VideoList(page, a.now()))
}

func (a *API) getVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	video, err := a.videos.RecordView(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, formatter.Video(video, a.now()))
}

func (a *API) likeVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	likes, err := a.videos.Like(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.LikeResponse{Success: true, Likes: likes, VideoID: id})
}

func (a *API) listChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := a.channels.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChannelsResponse{Channels: formatter.Channels(channels)})
}

func (a *API) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.videos.Categories(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CategoriesResponse{Categories: formatter.Categories(categories)})
}

func (a *API) trending(w http.ResponseWriter, r *http.Request) {
	now := a.now()
	videos, err := a.videos.Trending(r.Context(), now.Add(-trendingWindow), models.TrendingLimit)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.VideosResponse{Videos: formatter.Videos(videos, now)})
}

func (a *API) search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		writeJSON(w, http.StatusOK, models.VideosResponse{Videos: []models.VideoResponse{}})
		return
	}

	videos, err := a.videos.Search(r.Context(), term)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.VideosResponse{Videos: formatter.Videos(videos, a.now())})
}

func (a *API) platformStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.stats.Totals(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, formatter.Stats(stats))
}

// health is a liveness stub; it does not touch the database.
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: a.now().UTC().Format(time.RFC3339),
		Database:  "connected",
	})
}
