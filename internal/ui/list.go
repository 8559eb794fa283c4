package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/vidtube/internal/formatter"
	"github.com/desertthunder/vidtube/internal/models"
)

var (
	_ list.Item = videoItem{}
)

// videoItem wraps [models.Video] to implement [list.Item].
type videoItem struct {
	video *models.Video
}

func (i videoItem) FilterValue() string { return i.video.Title }
func (i videoItem) Title() string       { return i.video.Title }
func (i videoItem) Description() string {
	desc := fmt.Sprintf("%s views • %s likes", formatter.FormatViews(i.video.Views), formatter.FormatViews(i.video.Likes))
	if c := i.video.Channel; c != nil {
		desc = fmt.Sprintf("%s • %s", c.Name, desc)
	}
	if i.video.Category != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.video.Category)
	}
	return desc
}

func videoItems(videos []*models.Video) []list.Item {
	items := make([]list.Item, len(videos))
	for i, v := range videos {
		items[i] = videoItem{video: v}
	}
	return items
}
