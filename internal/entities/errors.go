package entities

import "errors"

var (
	ErrAddressNotFound      = errors.New("address not found")
	ErrLocationUnavailable  = errors.New("could not get location")
	ErrInvalidTransition    = errors.New("invalid sidebar transition")
	ErrNotConfirmable       = errors.New("pickup point is not confirmable")
	ErrSessionNotFound      = errors.New("session not found")
	ErrPickupOptionNotFound = errors.New("pickup option not found")
	ErrInvalidPickupPoint   = errors.New("invalid pickup point")
)
