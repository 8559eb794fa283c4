// Package repositories implements SQLite persistence for the catalog entities.
//
// Key Implementations:
//   - [ChannelRepository] : channel inserts and listings with aggregated video counts
//   - [VideoRepository] : filtered/paginated listings, trending, search and the view/like counters
//   - [UserRepository] : account persistence with username lookups
//   - [StatsRepository] : catalog-wide aggregates
//
// [Seed] loads the sample catalog in a single transaction and is a no-op once any channel exists.
//
// Every write that touches more than one statement runs in a transaction with a deferred rollback,
// so a failure (or a panic unwinding the request) discards partial work.
package repositories
