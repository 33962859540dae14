package model

import "errors"

// Common errors used across the application
var (
	// Word and board errors
	ErrInvalidWord        = errors.New("invalid word")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidAnchor      = errors.New("invalid anchor position")
	ErrConflictingOverlap = errors.New("placed words disagree on a shared cell")
	ErrDuplicateKey       = errors.New("a word is already placed at this orientation and anchor")

	// Placement errors
	ErrNoValidPlacement = errors.New("no valid placement for word")

	// Puzzle errors
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrInvalidTitle   = errors.New("invalid puzzle title")

	// Word list errors
	ErrWordListNotLoaded = errors.New("word list not loaded")
	ErrInvalidStrategy   = errors.New("invalid build strategy")
)
