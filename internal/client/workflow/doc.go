// Package workflow implements the farm profile and recommendation workflow
// controller.
//
// The Controller is a small state machine over the active-profile slot
// (Empty, Draft, Selected) that glues user actions to the token source,
// gateway, registry, and view. It owns the single mutable field draft and the
// active result set, and it owns the fallback policy: when the backend cannot
// serve a request the user gets a locally synthesized outcome (an estimated
// recommendation set, a locally assigned farm id) instead of a
// network-shaped error.
//
// The controller is built for a single cooperative execution context — one
// user action at a time. It is not safe for concurrent use.
package workflow
