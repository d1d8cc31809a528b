// Package view computes the read-side projections every screen renders:
// role-scoped visibility, search filtering, quote grouping and statistics,
// and requirement resolution. All functions are pure over a snapshot and are
// safe to recompute on every read.
package view
