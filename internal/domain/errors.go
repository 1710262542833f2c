package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrKindDuplicate    ErrorKind = "DUPLICATE_IDENTITY"
	ErrKindNotFound     ErrorKind = "NOT_FOUND"
	ErrKindInvalidState ErrorKind = "INVALID_STATE"
	ErrKindEmpty        ErrorKind = "EMPTY_COLLECTION"
	ErrKindInvalidInput ErrorKind = "INVALID_INPUT"
)

// Sentinels for errors.Is. A DeskError matches the sentinel of its kind.
var (
	ErrDuplicate    = &DeskError{Kind: ErrKindDuplicate}
	ErrNotFound     = &DeskError{Kind: ErrKindNotFound}
	ErrInvalidState = &DeskError{Kind: ErrKindInvalidState}
	ErrEmpty        = &DeskError{Kind: ErrKindEmpty}
	ErrInvalidInput = &DeskError{Kind: ErrKindInvalidInput}
)

// DeskError is a recoverable failure of a single desk transaction. Message is
// what the operator sees.
type DeskError struct {
	Kind    ErrorKind
	Message string
}

func (e *DeskError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DeskError) Is(target error) bool {
	t, ok := target.(*DeskError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func NewDuplicateError(msg string) error {
	return &DeskError{Kind: ErrKindDuplicate, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &DeskError{Kind: ErrKindNotFound, Message: msg}
}

func NewInvalidStateError(msg string) error {
	return &DeskError{Kind: ErrKindInvalidState, Message: msg}
}

func NewEmptyError(msg string) error {
	return &DeskError{Kind: ErrKindEmpty, Message: msg}
}

func NewInvalidInputError(msg string) error {
	return &DeskError{Kind: ErrKindInvalidInput, Message: msg}
}

// AsDeskError unwraps err to a DeskError if it carries one.
func AsDeskError(err error) (*DeskError, bool) {
	var de *DeskError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
