package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidtube/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgVideosFetched MsgKind = iota
	MsgVideoOpened
	MsgVideoLiked
)

type videosFetched struct {
	page *models.VideoPage
	err  error
}

type videoOpened struct {
	video *models.Video
	err   error
}

type videoLiked struct {
	id    int64
	likes int64
	err   error
}

// videosFetchedMsg is the constructor for [MsgVideosFetched]
func videosFetchedMsg(page *models.VideoPage, err error) Msg {
	return Msg{kind: MsgVideosFetched, data: videosFetched{page, err}}
}

// videoOpenedMsg is the constructor for [MsgVideoOpened]
func videoOpenedMsg(video *models.Video, err error) Msg {
	return Msg{kind: MsgVideoOpened, data: videoOpened{video, err}}
}

// videoLikedMsg is the constructor for [MsgVideoLiked]
func videoLikedMsg(id, likes int64, err error) Msg {
	return Msg{kind: MsgVideoLiked, data: videoLiked{id, likes, err}}
}
