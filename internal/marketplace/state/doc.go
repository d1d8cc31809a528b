// Package state implements the action-driven state engine for the
// marketplace. All mutations flow through Reduce, a pure transition function
// over immutable snapshots; Store owns the authoritative snapshot, validates
// actions before applying them, and keeps a journal of everything applied.
package state
