// Package cli implements the interactive planting-recommendation console.
//
// It wires the API client, the session farm registry, the recommendation
// gateway and the report exporter into a workflow controller, and exposes
// them through a small REPL.
package cli
