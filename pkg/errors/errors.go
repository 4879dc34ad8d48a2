package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeSourceMissing     Code = "SOURCE_MISSING"
	CodeSourceUnreachable Code = "SOURCE_UNREACHABLE"
	CodeBadRecord         Code = "BAD_RECORD"
	CodePersistence       Code = "PERSISTENCE_FAILURE"
	CodeInternal          Code = "INTERNAL_ERROR"
)

type Metadata struct {
	Retryable     bool
	PublicMessage string
}

var metadataByCode = map[Code]Metadata{
	CodeSourceMissing: {
		Retryable:     false,
		PublicMessage: "source file not found",
	},
	CodeSourceUnreachable: {
		Retryable:     true,
		PublicMessage: "source endpoint unreachable",
	},
	CodeBadRecord: {
		Retryable:     false,
		PublicMessage: "record could not be coerced to the canonical schema",
	},
	CodePersistence: {
		Retryable:     true,
		PublicMessage: "destination store write failed",
	},
	CodeInternal: {
		Retryable:     false,
		PublicMessage: "internal error",
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

// CodeOf extracts the code from any error, defaulting to CodeInternal for
// errors produced outside this package.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if typed := As(err); typed != nil {
		return typed.Code()
	}
	return CodeInternal
}
