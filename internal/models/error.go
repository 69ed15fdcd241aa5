package models

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrMissingReason     = errors.New("rejection reason is required")
	ErrAlreadyUpdating   = errors.New("order status update already in progress")
	ErrUnauthorized      = errors.New("backend rejected credentials")
	ErrBackend           = errors.New("backend request failed")
)
