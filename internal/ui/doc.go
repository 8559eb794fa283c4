// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is a catalog browser with two views:
//  1. [VideoListView] : Browse the newest videos page by page, with fuzzy filtering
//  2. [VideoDetailView] : Read the full entry for one video (opening it counts a view)
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// All catalog access goes through the [Catalog] interface and runs inside [tea.Cmd] functions, so the event
// loop never blocks on the database.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, l, n/p, q) with contextual help displayed via charmbracelet/bubbles/help.
//
// [RenderStats] renders platform totals with the same palette for non-interactive output.
package ui
