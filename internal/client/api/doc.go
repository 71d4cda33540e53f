// Package api contains client-side building blocks for talking to the
// planting-optimisation backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     ExchangeToken, CreateFarm, GetFarm, ListFarms, GetRecommendations,
//     ListSpecies.
//  2. A concrete HTTP implementation (see HTTPClient) that speaks the
//     backend's REST contract — a form-encoded password grant for
//     /auth/token and bearer-authenticated JSON for everything else — and
//     maps transport conditions to sentinel errors.
//  3. A session-scoped token cache (see TokenSource) that performs at most
//     one credential exchange per session and de-duplicates concurrent
//     in-flight exchanges.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrMalformed.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
