package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrNameRequired    = errors.New("player name is required")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidNumber   = errors.New("jersey number must not be negative")

	// Game record errors
	ErrGameNotFound = errors.New("game not found")

	// Availability errors
	ErrInvalidStatus = errors.New("invalid status")
	ErrReadyListFull = errors.New("ready list is full")

	// Slot errors
	ErrInvalidSlot        = errors.New("invalid slot index")
	ErrPositionMismatch   = errors.New("player position does not match slot")
	ErrSlotOccupied       = errors.New("slot is already occupied")
	ErrSlotEmpty          = errors.New("slot is empty")
	ErrNotInReadyList     = errors.New("player is not in the ready list")
	ErrAlreadyInLineup    = errors.New("player is already in the lineup")
	ErrAlreadyInReadyList = errors.New("player is already in the ready list")

	// Backup errors
	ErrInvalidBackup = errors.New("invalid backup file")
)
