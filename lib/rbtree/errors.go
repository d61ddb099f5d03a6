package rbtree

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrInvalidRotation = errors.New("invalid rotation")
)

type DuplicateKeyError[K any] struct {
	Key K
}

func (T DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("duplicate key: %v", T.Key)
}

func (T DuplicateKeyError[K]) Unwrap() error {
	return ErrDuplicateKey
}

// RotationError means a rotation was requested on a node missing the child
// that would be promoted. It is never returned through Insert or Remove; the
// fixups panic with it instead.
type RotationError struct {
	Direction string
}

func (T RotationError) Error() string {
	return fmt.Sprintf("invalid rotation: %s rotation without a %s child", T.Direction, T.missing())
}

func (T RotationError) missing() string {
	if T.Direction == "left" {
		return "right"
	}
	return "left"
}

func (T RotationError) Unwrap() error {
	return ErrInvalidRotation
}

// VerifyError describes the first red-black or structural violation found
// by Verify.
type VerifyError struct {
	Reason string
	// Key of the offending node, if there is one
	Key any
}

func (T VerifyError) Error() string {
	if T.Key == nil {
		return "invalid tree: " + T.Reason
	}
	return fmt.Sprintf("invalid tree: %s at key %v", T.Reason, T.Key)
}

var (
	_ error = DuplicateKeyError[int]{}
	_ error = RotationError{}
	_ error = VerifyError{}
)
