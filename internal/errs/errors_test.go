package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	cause := errors.New("dial tcp: refused")

	assert.Equal(t, "[connection_failed] ping failed: dial tcp: refused",
		Wrap(ErrKindConnectionFailed, "ping failed", cause).Error())
	assert.Equal(t, "[invalid_input] dsn is required",
		New(ErrKindInvalidInput, "dsn is required").Error())
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", New(ErrKindNotFound, "x"), IsNotFound},
		{"timeout", New(ErrKindTimeout, "x"), IsTimeout},
		{"connection", New(ErrKindConnectionFailed, "x"), IsConnectionFailed},
		{"query", New(ErrKindQueryFailed, "x"), IsQueryFailed},
		{"input", New(ErrKindInvalidInput, "x"), IsInvalidInput},
		{"permission", New(ErrKindPermissionDenied, "x"), IsPermissionDenied},
		{"format", New(ErrKindFormatFailed, "x"), IsFormatFailed},
		{"write", New(ErrKindWriteFailed, "x"), IsWriteFailed},
		{"wrapped by fmt", fmt.Errorf("list tables: %w", New(ErrKindQueryFailed, "x")), IsQueryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrKindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, ErrKindUnknown, KindOf(nil))
	assert.Equal(t, "unknown", ErrKindUnknown.String())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := Wrap(ErrKindWriteFailed, "write models/users.ts", cause)
	assert.ErrorIs(t, err, cause)
}
