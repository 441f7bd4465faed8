package port

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidState = errors.New("record is not in the expected state")
	ErrDuplicate    = errors.New("record already exists")

	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
