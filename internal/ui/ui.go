package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidtube/internal/formatter"
	"github.com/desertthunder/vidtube/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	VideoListView ViewState = iota
	VideoDetailView
)

// Catalog is the video access the TUI needs. [repositories.VideoRepository] satisfies it.
type Catalog interface {
	List(ctx context.Context, q models.VideoQuery) (*models.VideoPage, error)
	RecordView(ctx context.Context, id int64) (*models.Video, error)
	Like(ctx context.Context, id int64) (int64, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	catalog   Catalog
	now       func() time.Time
	width     int
	height    int
	query     models.VideoQuery
	page      *models.VideoPage
	videoList list.Model
	selected  *models.Video
	status    string
	err       error
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model browsing catalog. q sets the initial filters and page size.
func NewModel(ctx context.Context, catalog Catalog, q models.VideoQuery) *Model {
	return &Model{
		ctx:       ctx,
		view:      VideoListView,
		catalog:   catalog,
		now:       time.Now,
		query:     q.Normalize(0),
		videoList: newVideoList(nil),
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

func newVideoList(items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "VidTube"
	l.SetShowHelp(false)
	return l
}

// ViewState returns the active view.
func (m *Model) ViewState() ViewState { return m.view }

// Init initializes the TUI by fetching the first page of videos.
func (m *Model) Init() tea.Cmd {
	return m.fetchVideos(m.query)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.videoList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case VideoListView:
			return m.handleListKeys(msg)
		case VideoDetailView:
			return m.handleDetailKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	m.videoList, cmd = m.videoList.Update(msg)
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgVideosFetched:
		data := msg.data.(videosFetched)
		if data.err != nil {
			m.err = data.err
			return m, nil
		}
		m.err = nil
		m.page = data.page
		m.query.Page = data.page.Page

		cmd := m.videoList.SetItems(videoItems(data.page.Videos))
		m.videoList.Title = fmt.Sprintf("VidTube • page %d of %d • %d videos", data.page.Page, max(data.page.Pages(), 1), data.page.Total)
		return m, cmd

	case MsgVideoOpened:
		data := msg.data.(videoOpened)
		if data.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Could not open video: %v", data.err))
			return m, nil
		}
		m.selected = data.video
		m.replaceVideo(data.video)
		m.status = ""
		m.view = VideoDetailView
		return m, nil

	case MsgVideoLiked:
		data := msg.data.(videoLiked)
		if data.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Like failed: %v", data.err))
			return m, nil
		}
		if m.selected != nil && m.selected.ID == data.id {
			m.selected.Likes = data.likes
		}
		for _, item := range m.videoList.Items() {
			if vi, ok := item.(videoItem); ok && vi.video.ID == data.id {
				vi.video.Likes = data.likes
			}
		}
		m.status = styles.ok.Render(fmt.Sprintf("✓ Liked (%s likes)", formatter.FormatViews(data.likes)))
		return m, nil
	}
	return m, nil
}

// replaceVideo swaps the listed copy of v for the fresh one so counters stay in sync.
func (m *Model) replaceVideo(v *models.Video) {
	for i, item := range m.videoList.Items() {
		if vi, ok := item.(videoItem); ok && vi.video.ID == v.ID {
			m.videoList.SetItem(i, videoItem{video: v})
			return
		}
	}
}

func (m *Model) selectedVideo() *models.Video {
	if item, ok := m.videoList.SelectedItem().(videoItem); ok {
		return item.video
	}
	return nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.videoList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.videoList, cmd = m.videoList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if v := m.selectedVideo(); v != nil {
			return m, m.openVideo(v.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.like):
		if v := m.selectedVideo(); v != nil {
			return m, m.likeVideo(v.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.next):
		if m.page != nil && m.page.HasNext() {
			q := m.query
			q.Page++
			return m, m.fetchVideos(q)
		}
		return m, nil
	case key.Matches(msg, m.keys.prev):
		if m.page != nil && m.page.HasPrev() {
			q := m.query
			q.Page--
			return m, m.fetchVideos(q)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.videoList, cmd = m.videoList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = VideoListView
		m.selected = nil
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.like):
		if m.selected != nil {
			return m, m.likeVideo(m.selected.ID)
		}
	}
	return m, nil
}

func (m *Model) fetchVideos(q models.VideoQuery) tea.Cmd {
	return func() tea.Msg {
		page, err := m.catalog.List(m.ctx, q)
		return videosFetchedMsg(page, err)
	}
}

func (m *Model) openVideo(id int64) tea.Cmd {
	return func() tea.Msg {
		video, err := m.catalog.RecordView(m.ctx, id)
		return videoOpenedMsg(video, err)
	}
}

func (m *Model) likeVideo(id int64) tea.Cmd {
	return func() tea.Msg {
		likes, err := m.catalog.Like(m.ctx, id)
		return videoLikedMsg(id, likes, err)
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case VideoListView:
		return m.renderList()
	case VideoDetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) renderList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.like}
	if m.page != nil && m.page.HasNext() {
		helpKeys = append(helpKeys, m.keys.next)
	}
	if m.page != nil && m.page.HasPrev() {
		helpKeys = append(helpKeys, m.keys.prev)
	}
	helpKeys = append(helpKeys, m.keys.quit)

	out := fmt.Sprintf("%s\n\n%s", m.videoList.View(), m.help.ShortHelpView(helpKeys))
	if m.status != "" {
		out += "\n" + m.status
	}
	return out
}

func (m *Model) renderDetail() string {
	v := m.selected
	if v == nil {
		return styles.err.Render("No video selected\n\nPress esc to go back")
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(v.Title))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	if v.Channel != nil {
		row("Channel", fmt.Sprintf("%s (%s subscribers)", v.Channel.Name, formatter.FormatViews(v.Channel.Subscribers)))
	}
	row("Category", v.Category)
	row("Duration", v.Duration)
	row("Views", formatter.FormatViews(v.Views))
	row("Likes", formatter.FormatViews(v.Likes))
	row("Published", formatter.FormatTimeAgo(v.CreatedAt, m.now()))
	row("URL", v.VideoURL)

	if v.Description != "" {
		b.WriteString("\n")
		b.WriteString(v.Description)
		b.WriteString("\n")
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.like, m.keys.back, m.keys.quit})
	out := fmt.Sprintf("%s\n%s", styles.box.Render(strings.TrimRight(b.String(), "\n")), helpView)
	if m.status != "" {
		out += "\n" + m.status
	}
	return out
}
