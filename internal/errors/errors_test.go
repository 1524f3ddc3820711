package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrTypeValidation, "test error message")

	assert.Equal(t, ErrTypeValidation, err.Type)
	assert.Equal(t, "test error message", err.Message)
	assert.NoError(t, err.Cause)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrTypeDatabase, "failed to connect to %s", "database")

	assert.Equal(t, ErrTypeDatabase, err.Type)
	assert.Equal(t, "failed to connect to database", err.Message)
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("original error")
	wrappedErr := Wrap(originalErr, ErrTypeTraining, "training run failed")

	assert.Equal(t, ErrTypeTraining, wrappedErr.Type)
	assert.Equal(t, "training run failed", wrappedErr.Message)
	assert.Equal(t, originalErr, wrappedErr.Cause)
	assert.ErrorIs(t, wrappedErr, originalErr)
}

func TestWrapf(t *testing.T) {
	originalErr := errors.New("file missing")
	wrappedErr := Wrapf(originalErr, ErrTypeDataSource, "cannot open %s", "data.csv")

	assert.Equal(t, ErrTypeDataSource, wrappedErr.Type)
	assert.Equal(t, "cannot open data.csv", wrappedErr.Message)
	assert.Equal(t, originalErr, wrappedErr.Cause)
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "error without cause",
			err: &Error{
				Type:    ErrTypeValidation,
				Message: "invalid schema text",
			},
			expected: "validation: invalid schema text",
		},
		{
			name: "error with cause",
			err: &Error{
				Type:    ErrTypeDatabase,
				Message: "query failed",
				Cause:   errors.New("connection timeout"),
			},
			expected: "database: query failed (caused by: connection timeout)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIsType(t *testing.T) {
	err := New(ErrTypeNotFound, "project missing")

	assert.True(t, IsType(err, ErrTypeNotFound))
	assert.False(t, IsType(err, ErrTypeDatabase))
	assert.False(t, IsType(errors.New("plain"), ErrTypeNotFound))
}

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrTypeConfig, GetType(New(ErrTypeConfig, "bad config")))
	assert.Equal(t, ErrTypeInternal, GetType(errors.New("plain error")))

	wrapped := Wrap(New(ErrTypeDataSource, "inner"), ErrTypeTraining, "outer")
	assert.Equal(t, ErrTypeTraining, GetType(wrapped))
}

func TestWithSuggestion(t *testing.T) {
	err := New(ErrTypeValidation, "bad input").
		WithSuggestion("check the JSON syntax").
		WithSuggestion("only objects are accepted")

	assert.Len(t, err.Suggestions, 2)
}

func TestNewDataSourceError(t *testing.T) {
	err := NewDataSourceError("csv source requires a file name", "fileName")

	assert.Equal(t, ErrTypeDataSource, err.Type)
	assert.Contains(t, err.Message, "fileName")
	assert.NotEmpty(t, err.Suggestions)
}
