package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpsert = errors.New("failed to upsert records")
	ErrInvalidColumn  = errors.New("invalid filter column")
)
