package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/vidtube/internal/models"
	"github.com/desertthunder/vidtube/internal/shared"
)

// Format names an export encoding.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ParseFormat resolves a user-supplied format name, accepting the usual file extensions as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, s)
	}
}

// Extension is the file extension written for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return ".csv"
	}
}

// ExportToCSV converts videos to CSV with columns: ID, Title, Channel, Category, Duration, Views, Likes, Dislikes, Created
func ExportToCSV(videos []*models.Video) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Channel", "Category", "Duration", "Views", "Likes", "Dislikes", "Created"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, v := range videos {
		record := []string{
			strconv.FormatInt(v.ID, 10),
			v.Title,
			channelName(v),
			v.Category,
			v.Duration,
			strconv.FormatInt(v.Views, 10),
			strconv.FormatInt(v.Likes, 10),
			strconv.FormatInt(v.Dislikes, 10),
			v.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders videos as a numbered Markdown list under title.
func ExportToMarkdown(title string, videos []*models.Video, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", title)
	fmt.Fprintf(&buf, "**Videos**: %d\n\n", len(videos))

	buf.WriteString("## Videos\n\n")
	for i, v := range videos {
		fmt.Fprintf(&buf, "%d. **%s** by %s [%s]\n", i+1, v.Title, channelName(v), v.Duration)
		fmt.Fprintf(&buf, "   %s views • %s likes • %s", FormatViews(v.Views), FormatViews(v.Likes), FormatTimeAgo(v.CreatedAt, now))
		if v.Category != "" {
			fmt.Fprintf(&buf, " • %s", v.Category)
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts videos to plain text, one line per video.
func ExportToText(videos []*models.Video) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Videos: %d\n\n", len(videos))
	for i, v := range videos {
		fmt.Fprintf(&buf, "%d. %s - %s (%s views)\n", i+1, channelName(v), v.Title, FormatViews(v.Views))
	}

	return buf.Bytes(), nil
}

// Export encodes videos in format f.
func Export(f Format, title string, videos []*models.Video, now time.Time) ([]byte, error) {
	switch f {
	case FormatCSV:
		return ExportToCSV(videos)
	case FormatMarkdown:
		return ExportToMarkdown(title, videos, now)
	case FormatText:
		return ExportToText(videos)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, f)
	}
}

// WriteExport encodes videos in format f and writes them to path.
//
// Defaults to vidtube_videos{ext} as the filename.
func WriteExport(f Format, path, title string, videos []*models.Video, now time.Time) (string, error) {
	if path == "" {
		path = "vidtube_videos" + f.Extension()
	}

	data, err := Export(f, title, videos, now)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", f, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func channelName(v *models.Video) string {
	if v.Channel == nil {
		return ""
	}
	return v.Channel.Name
}
