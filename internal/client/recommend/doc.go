// Package recommend turns farm drafts into backend farm records and backend
// recommendation payloads into the domain model.
//
// The Gateway never substitutes placeholder data on its own: every failure is
// reported to the caller, who decides whether to fall back to EstimatedSet.
// This keeps "real data" and "placeholder data" distinguishable everywhere.
package recommend
