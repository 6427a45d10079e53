package domain

import "errors"

// ErrModelNotFound is returned when a case name cannot be found in a model store.
var ErrModelNotFound = errors.New("model not found")

// ErrDuplicateTally is returned when two tallies share a name.
var ErrDuplicateTally = errors.New("duplicate tally name")

// ErrUnknownMaterial is returned when a cell references a material missing from the catalog.
var ErrUnknownMaterial = errors.New("unknown material")

// ErrUnknownGroupStructure is returned when an energy filter names a group structure nobody can resolve.
var ErrUnknownGroupStructure = errors.New("unknown energy group structure")
