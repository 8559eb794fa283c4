package models

import (
	"fmt"
	"strings"
	"time"
)

// Validator is implemented by entities that check their own invariants before they are persisted.
type Validator interface {
	Validate() error
}

var (
	_ Validator = (*Channel)(nil)
	_ Validator = (*Video)(nil)
	_ Validator = (*User)(nil)
)

// ErrInvalidModel is wrapped by every Validate failure.
var ErrInvalidModel = fmt.Errorf("invalid model")

// Channel is a content publisher.
//
// VideoCount is only populated by listing queries that aggregate videos.
type Channel struct {
	ID          int64
	Name        string
	AvatarURL   string
	Subscribers int64
	CreatedAt   time.Time
	VideoCount  int
}

// Validate checks that the channel has a name and a non-negative subscriber count.
func (c *Channel) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: channel name is required", ErrInvalidModel)
	}
	if c.Subscribers < 0 {
		return fmt.Errorf("%w: subscribers must be >= 0, got %d", ErrInvalidModel, c.Subscribers)
	}
	return nil
}

// Video is a catalog entry. Duration is free text ("mm:ss" or "hh:mm:ss").
//
// Channel is set when the video was loaded together with its owner.
type Video struct {
	ID           int64
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	Duration     string
	Views        int64
	Likes        int64
	Dislikes     int64
	Category     string
	CreatedAt    time.Time
	ChannelID    int64
	Channel      *Channel
}

// Validate checks the title, the owning channel reference and the counters.
func (v *Video) Validate() error {
	if strings.TrimSpace(v.Title) == "" {
		return fmt.Errorf("%w: video title is required", ErrInvalidModel)
	}
	if v.ChannelID <= 0 {
		return fmt.Errorf("%w: video must belong to a channel", ErrInvalidModel)
	}
	if v.Views < 0 || v.Likes < 0 || v.Dislikes < 0 {
		return fmt.Errorf("%w: counters must be >= 0", ErrInvalidModel)
	}
	return nil
}

// User is an account with a unique username and email.
type User struct {
	ID        int64
	Username  string
	Email     string
	AvatarURL string
	CreatedAt time.Time
}

// Validate checks that username and email are present and the email looks like one.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidModel)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidModel, u.Email)
	}
	return nil
}

// PlatformStats holds catalog-wide aggregates.
type PlatformStats struct {
	TotalVideos   int64
	TotalChannels int64
	TotalViews    int64
	TotalLikes    int64
}
