package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeInputFormat       Code = "INPUT_FORMAT_ERROR"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
	CodeInternal          Code = "INTERNAL_ERROR"
	CodeDependency        Code = "DEPENDENCY_ERROR"
)

// Metadata drives how the console surfaces an error of a given code.
type Metadata struct {
	// OperatorMessage is the fallback line printed when the error itself
	// carries no operator-facing message.
	OperatorMessage string
	// Unexpected marks codes that are reported as an unexpected failure
	// instead of a normal prompt-level message.
	Unexpected     bool
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		OperatorMessage: "invalid input",
		Unexpected:      false,
		DetailsAllowed:  true,
	},
	CodeInputFormat: {
		OperatorMessage: "input could not be parsed",
		Unexpected:      false,
		DetailsAllowed:  true,
	},
	CodeNotFound: {
		OperatorMessage: "record not found",
		Unexpected:      false,
		DetailsAllowed:  false,
	},
	CodeInsufficientStock: {
		OperatorMessage: "insufficient stock",
		Unexpected:      false,
		DetailsAllowed:  false,
	},
	CodeInternal: {
		OperatorMessage: "internal error",
		Unexpected:      true,
		DetailsAllowed:  false,
	},
	CodeDependency: {
		OperatorMessage: "storage unavailable",
		Unexpected:      true,
		DetailsAllowed:  true,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
