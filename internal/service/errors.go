package service

import "errors"

var (
	ErrInvalidOrder       = errors.New("invalid order items")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
