package domain

import "errors"

var (
	ErrMissingToken        = errors.New("management token not set")
	ErrMissingSubscription = errors.New("subscription id not set")
	ErrUnauthorized        = errors.New("management API rejected the credentials")
	ErrPoolNotFound        = errors.New("host pool not found")
	ErrRunNotFound         = errors.New("run not found")
)
