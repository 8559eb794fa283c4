package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidtube/internal/models"
	"github.com/desertthunder/vidtube/internal/shared"
)

// fakeCatalog pages over an in-memory slice.
type fakeCatalog struct {
	videos  []*models.Video
	views   int
	listErr error
}

func newFakeCatalog(n int) *fakeCatalog {
	c := &fakeCatalog{}
	for i := 1; i <= n; i++ {
		c.videos = append(c.videos, &models.Video{
			ID:        int64(i),
			Title:     fmt.Sprintf("Video %d", i),
			Views:     1000,
			Likes:     10,
			Category:  "Technology",
			CreatedAt: time.Now().Add(-48 * time.Hour),
			ChannelID: 1,
			Channel:   &models.Channel{ID: 1, Name: "CodeMaster", Subscribers: 856000},
		})
	}
	return c
}

func (c *fakeCatalog) List(ctx context.Context, q models.VideoQuery) (*models.VideoPage, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	q = q.Normalize(0)
	start := min(q.Offset(), len(c.videos))
	end := min(start+q.PerPage, len(c.videos))

	page := make([]*models.Video, 0, end-start)
	for _, v := range c.videos[start:end] {
		cp := *v
		page = append(page, &cp)
	}
	return &models.VideoPage{Videos: page, Total: len(c.videos), Page: q.Page, PerPage: q.PerPage}, nil
}

func (c *fakeCatalog) find(id int64) *models.Video {
	for _, v := range c.videos {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (c *fakeCatalog) RecordView(ctx context.Context, id int64) (*models.Video, error) {
	v := c.find(id)
	if v == nil {
		return nil, shared.ErrNotFound
	}
	c.views++
	v.Views++
	cp := *v
	return &cp, nil
}

func (c *fakeCatalog) Like(ctx context.Context, id int64) (int64, error) {
	v := c.find(id)
	if v == nil {
		return 0, shared.ErrNotFound
	}
	v.Likes++
	return v.Likes, nil
}

// run executes cmd and feeds its message back into m, returning the follow-up command.
func run(t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	_, next := m.Update(cmd())
	return next
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func newLoadedModel(t *testing.T, catalog *fakeCatalog, q models.VideoQuery) *Model {
	t.Helper()
	m := NewModel(context.Background(), catalog, q)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	run(t, m, m.Init())
	return m
}

func TestModel(t *testing.T) {
	t.Run("Init Loads First Page", func(t *testing.T) {
		m := newLoadedModel(t, newFakeCatalog(3), models.VideoQuery{})

		if got := len(m.videoList.Items()); got != 3 {
			t.Fatalf("expected 3 items, got %d", got)
		}
		if m.ViewState() != VideoListView {
			t.Errorf("expected list view, got %v", m.ViewState())
		}
		if !strings.Contains(m.videoList.Title, "page 1 of 1") {
			t.Errorf("unexpected title %q", m.videoList.Title)
		}
	})

	t.Run("Fetch Error", func(t *testing.T) {
		catalog := newFakeCatalog(1)
		catalog.listErr = errors.New("database is locked")
		m := newLoadedModel(t, catalog, models.VideoQuery{})

		if !strings.Contains(m.View(), "database is locked") {
			t.Errorf("expected error in view, got %q", m.View())
		}
	})

	t.Run("Open And Return", func(t *testing.T) {
		catalog := newFakeCatalog(3)
		m := newLoadedModel(t, catalog, models.VideoQuery{})

		run(t, m, press(m, "enter"))
		if m.ViewState() != VideoDetailView {
			t.Fatalf("expected detail view, got %v", m.ViewState())
		}
		if m.selected == nil || m.selected.ID != 1 || m.selected.Views != 1001 {
			t.Errorf("expected video 1 with a recorded view, got %+v", m.selected)
		}
		if catalog.views != 1 {
			t.Errorf("expected one recorded view, got %d", catalog.views)
		}

		view := m.View()
		for _, want := range []string{"Video 1", "CodeMaster", "2 days ago"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected detail view to contain %q", want)
			}
		}

		press(m, "esc")
		if m.ViewState() != VideoListView || m.selected != nil {
			t.Errorf("expected to return to the list")
		}
	})

	t.Run("Like From Detail", func(t *testing.T) {
		m := newLoadedModel(t, newFakeCatalog(2), models.VideoQuery{})

		run(t, m, press(m, "enter"))
		run(t, m, press(m, "l"))

		if m.selected.Likes != 11 {
			t.Errorf("expected 11 likes, got %d", m.selected.Likes)
		}
		if !strings.Contains(m.status, "Liked") {
			t.Errorf("expected like confirmation, got %q", m.status)
		}
	})

	t.Run("Like From List", func(t *testing.T) {
		m := newLoadedModel(t, newFakeCatalog(2), models.VideoQuery{})

		run(t, m, press(m, "l"))

		item := m.videoList.Items()[0].(videoItem)
		if item.video.Likes != 11 {
			t.Errorf("expected listed video to show 11 likes, got %d", item.video.Likes)
		}
	})

	t.Run("Paging", func(t *testing.T) {
		m := newLoadedModel(t, newFakeCatalog(5), models.VideoQuery{PerPage: 2})

		if cmd := press(m, "p"); cmd != nil {
			t.Error("expected no previous page on page 1")
		}

		run(t, m, press(m, "n"))
		if m.page.Page != 2 {
			t.Fatalf("expected page 2, got %d", m.page.Page)
		}
		if first := m.videoList.Items()[0].(videoItem); first.video.ID != 3 {
			t.Errorf("expected video 3 first on page 2, got %d", first.video.ID)
		}

		run(t, m, press(m, "n"))
		if cmd := press(m, "n"); cmd != nil {
			t.Error("expected no next page on the last page")
		}

		run(t, m, press(m, "p"))
		if m.page.Page != 2 {
			t.Errorf("expected page 2 after going back, got %d", m.page.Page)
		}
	})

	t.Run("Quit", func(t *testing.T) {
		m := newLoadedModel(t, newFakeCatalog(1), models.VideoQuery{})

		cmd := press(m, "q")
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})
}

func TestVideoItem(t *testing.T) {
	item := videoItem{video: &models.Video{
		Title:    "Space Exploration: Mars Mission Updates",
		Views:    1500000,
		Likes:    42000,
		Category: "Science",
		Channel:  &models.Channel{Name: "Space Science"},
	}}

	if item.FilterValue() != item.video.Title {
		t.Errorf("expected filter value to be the title")
	}

	want := "Space Science • 1.5M views • 42K likes • Science"
	if got := item.Description(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderStats(t *testing.T) {
	out := RenderStats(models.StatsResponse{
		TotalVideos:         12,
		TotalChannels:       12,
		TotalViews:          24956000,
		TotalViewsFormatted: "25.0M",
		TotalLikes:          784000,
		TotalLikesFormatted: "784K",
	})

	for _, want := range []string{"Platform Stats", "25.0M", "784K", "12"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}
