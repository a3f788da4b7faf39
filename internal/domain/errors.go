package domain

import "errors"

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateMovie  = errors.New("movie with this title and year already exists")
	ErrSeatAlreadyHeld = errors.New("seat is already held")
)
