// Package models defines the catalog entities and the JSON shapes served by the vidtube API.
//
// The package contains two categories of types:
//
// 1. Persistent entities, scanned from and written to SQLite by the repositories package
//   - [Channel] : a publisher owning zero or more videos
//   - [Video] : a catalog entry with engagement counters and a required owning channel
//   - [User] : an account; stored but not referenced by any other entity
//
// 2. Query and response types
//   - [VideoQuery] and [VideoPage] : filter/paginate input and the page it produces
//   - [VideoResponse], [ChannelResponse], [StatsResponse], ... : JSON bodies with derived fields
//
// Derived fields (formatted counts, relative times) are computed by the formatter package at
// serialization time and never stored.
package models
