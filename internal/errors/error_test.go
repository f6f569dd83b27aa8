package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultMessage(t *testing.T) {
	err := New(MalformedPayload)

	assert.Equal(t, MalformedPayload, err.Code)
	assert.Equal(t, "Invalid request format", err.Message)
	assert.Empty(t, err.Details)
	assert.Nil(t, err.Err)
	assert.Equal(t, "[PAYLOAD_001] Invalid request format", err.Error())
}

func TestNew_WithOptions(t *testing.T) {
	cause := stderrors.New("disk full")
	err := New(FileWriteFailure,
		WithMessage("could not store 42.jpg"),
		WithDetails("first", "second"),
		WithCause(cause),
	)

	assert.Equal(t, "could not store 42.jpg", err.Message)
	assert.Equal(t, []string{"first", "second"}, err.Details)
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, err.IsServerError())
	assert.False(t, err.IsClientError())
}

func TestAs_FindsWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", New(InvalidPage))

	coded, ok := As(wrapped)

	assert.True(t, ok)
	assert.Equal(t, InvalidPage, coded.Code)
	assert.True(t, coded.IsClientError())
	assert.True(t, HasCode(wrapped, InvalidPage))
	assert.False(t, HasCode(wrapped, MalformedPayload))
}

func TestAs_PlainError(t *testing.T) {
	coded, ok := As(stderrors.New("plain"))

	assert.False(t, ok)
	assert.Nil(t, coded)
}
