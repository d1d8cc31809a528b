// Package domain defines the marketplace entities and the validating
// constructors that assemble well-formed values for the state engine.
//
// Entities reference each other by id only; relationships are resolved by
// linear lookup at read time. Constructors normalize and validate input and
// assign generated identifiers, so downstream reducer code can assume
// payloads are complete.
package domain
