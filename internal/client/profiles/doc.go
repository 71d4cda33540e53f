// Package profiles is the session registry of farm profiles.
//
// Profiles are keyed by their backend-assigned (or locally synthesized) id
// and stored in an in-memory SQLite database that lives exactly as long as
// the process, so nothing persists beyond the session. The registry is a
// cache, not a source of truth: Store.Resolve consults it first and falls
// back to the remote read, caching whatever the server returns. Entries are
// never evicted.
package profiles
