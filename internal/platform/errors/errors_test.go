package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := ValidationError("title is required")

	assert.Equal(t, TypeValidation, err.Type)
	assert.Equal(t, "title is required", err.Message)
	assert.Nil(t, err.Cause)
	assert.NotNil(t, err.Context)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Contains(t, err.Error(), "validation")
	assert.Contains(t, err.Error(), "title is required")
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("store unavailable")
	err := InternalError("failed to list items", cause)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.Contains(t, err.Error(), "failed to list items")
	assert.Contains(t, err.Error(), "store unavailable")
}

func TestInternalErrorWithoutCause(t *testing.T) {
	err := InternalError("something went wrong", nil)

	assert.Nil(t, err.Cause)
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestWithCause(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := ValidationError("malformed request body").WithCause(cause)

	assert.Equal(t, TypeValidation, err.Type)
	assert.True(t, errors.Is(err, cause))
}

func TestWithField(t *testing.T) {
	err := ValidationError("invalid field").
		WithField("field", "completed").
		WithField("expected", "bool")

	assert.Len(t, err.Context, 2)
	assert.Equal(t, "completed", err.Context["field"])
	assert.Equal(t, "bool", err.Context["expected"])
}

func TestWithFieldNilMap(t *testing.T) {
	err := &Error{Type: TypeValidation, Message: "test"}

	err = err.WithField("key", "value")

	assert.Equal(t, "value", err.Context["key"])
}

func TestToResponse(t *testing.T) {
	err := ValidationError("invalid field").WithField("field", "title")

	resp := err.ToResponse()

	assert.Equal(t, "invalid field", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, "title", resp.Context["field"])
}

func TestErrorsAs(t *testing.T) {
	err := ValidationError("test")

	var target *Error
	require.True(t, errors.As(err, &target))
	assert.Equal(t, TypeValidation, target.Type)
}

func TestAsStructuredError(t *testing.T) {
	t.Run("structured error is returned unchanged", func(t *testing.T) {
		original := ValidationError("original")
		assert.Same(t, original, AsStructuredError(original))
	})

	t.Run("standard error becomes internal", func(t *testing.T) {
		original := fmt.Errorf("standard error")
		result := AsStructuredError(original)

		require.NotNil(t, result)
		assert.Equal(t, TypeInternal, result.Type)
		assert.Equal(t, "internal server error", result.Message)
		assert.Equal(t, original, result.Cause)
	})

	t.Run("wrapped structured error is unwrapped", func(t *testing.T) {
		inner := ValidationError("title is required")
		wrapped := fmt.Errorf("wrapped: %w", inner)
		result := AsStructuredError(wrapped)

		require.NotNil(t, result)
		assert.Same(t, inner, result)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, AsStructuredError(nil))
	})
}

func TestHTTPStatusAllTypes(t *testing.T) {
	tests := []struct {
		name       string
		errorType  ErrorType
		wantStatus int
	}{
		{"validation", TypeValidation, http.StatusBadRequest},
		{"internal", TypeInternal, http.StatusInternalServerError},
		{"unknown", ErrorType("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &Error{Type: tt.errorType}
			assert.Equal(t, tt.wantStatus, err.HTTPStatus())
		})
	}
}
