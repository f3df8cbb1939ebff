package library

import (
	"errors"
)

// Kind classifies errors returned by this package.
type Kind uint8

const (
	KindInternal  Kind = iota // store or system failure
	KindUserInput             // caller supplied arguments that cannot be applied
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindUserInput:
		return "user input"
	}
	return "unknown"
}

// CodeBadUserInput is the error code reported for user input errors.
const CodeBadUserInput = "BAD_USER_INPUT"

var (
	ErrDuplicateBook    = errors.New("book already added")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// DuplicateBookError is returned by AddBook when a book with the same title
// and author already exists.
type DuplicateBookError struct {
	Title  string
	Author string
}

func (e *DuplicateBookError) Error() string {
	return "Book already added"
}

func (e *DuplicateBookError) Is(target error) bool {
	return target == ErrDuplicateBook
}

func (e *DuplicateBookError) Kind() Kind {
	return KindUserInput
}

// Extensions is the extra error payload reported to GraphQL clients.
func (e *DuplicateBookError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":        CodeBadUserInput,
		"invalidArgs": e.Title,
	}
}

type invalidArgumentsError struct {
	err error
}

func (e *invalidArgumentsError) Error() string {
	return ErrInvalidArguments.Error() + ": " + e.err.Error()
}

func (e *invalidArgumentsError) Unwrap() []error {
	return []error{ErrInvalidArguments, e.err}
}

func (e *invalidArgumentsError) Kind() Kind {
	return KindUserInput
}

// KindOf reports the Kind of err. Errors that carry no kind are internal.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindInternal
}
