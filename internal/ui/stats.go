package ui

import (
	"fmt"
	"strings"

	"github.com/desertthunder/vidtube/internal/models"
)

// RenderStats renders platform totals as a bordered block.
func RenderStats(s models.StatsResponse) string {
	var b strings.Builder
	b.WriteString(styles.title.Render("VidTube Platform Stats"))
	b.WriteString("\n")

	rows := []struct{ label, value string }{
		{"Videos", fmt.Sprintf("%d", s.TotalVideos)},
		{"Channels", fmt.Sprintf("%d", s.TotalChannels)},
		{"Views", fmt.Sprintf("%s (%d)", s.TotalViewsFormatted, s.TotalViews)},
		{"Likes", fmt.Sprintf("%s (%d)", s.TotalLikesFormatted, s.TotalLikes)},
	}
	for i, r := range rows {
		b.WriteString(styles.label.Render(r.label))
		b.WriteString(styles.ok.Render(r.value))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return styles.box.Render(b.String())
}
