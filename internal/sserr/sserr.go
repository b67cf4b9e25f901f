// Package sserr defines the closed error taxonomy shared by every layer
// of the library. Lower components wrap their failures into exactly one
// kind; layers above forward errors unchanged, and the FFI layer performs
// the single translation from kind to integer return code.
package sserr

import (
	"errors"
	"fmt"
)

// Kind classifies an error into the library's closed taxonomy.
type Kind uint8

const (
	// KindUnknown marks errors that did not originate in this library.
	KindUnknown Kind = iota
	// KindConfig covers missing or malformed environment configuration.
	KindConfig
	// KindKeypair covers mnemonic and key derivation failures.
	KindKeypair
	// KindRPC covers network and node-reported failures.
	KindRPC
	// KindToken covers domain-level rejections (invalid metadata, amounts,
	// node rejection of a token operation).
	KindToken
	// KindFFI covers boundary-marshaling failures (null pointer, bad
	// encoding, buffer too small).
	KindFFI
)

// String returns the taxonomy label used in rendered error messages.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindKeypair:
		return "keypair"
	case KindRPC:
		return "rpc"
	case KindToken:
		return "token"
	case KindFFI:
		return "ffi"
	default:
		return "unknown"
	}
}

// Error carries a taxonomy kind, the operation that failed, and the
// underlying cause (optional).
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error with a static message and no cause.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// Newf creates a classified error with a formatted message and no cause.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: fmt.Sprintf(format, args...)}
}

// Wrap classifies err under kind with op as context. Returns nil when err
// is nil so call sites can wrap unconditionally.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf walks the error chain and returns the first classified kind.
// Errors that never passed through this package report KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err (or anything it wraps) carries kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
