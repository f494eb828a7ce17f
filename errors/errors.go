package errors

import (
	"errors"
)

var (
	ErrEmptyDelimiter = errors.New("delimiter matches an empty string")
	ErrNoPieces       = errors.New("splitter produced no pieces")
)
