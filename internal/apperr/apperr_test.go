package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
		label  string
	}{
		{Validation("missing %s", "name"), 400, "Bad Request"},
		{NotFound("id %d", 7), 404, "Not Found"},
		{Conflict("sku taken"), 409, "Conflict"},
		{UnsupportedMedia("bad content type"), 415, "Unsupported media type"},
		{Persistence(errors.New("disk on fire")), 500, "Internal Server Error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.Status)
		assert.Equal(t, tt.label, tt.err.Label)
		assert.NotEmpty(t, tt.err.Error())
	}

	assert.Equal(t, "missing name", Validation("missing %s", "name").Error())
}

func TestErrorsAs(t *testing.T) {
	var err error = NotFound("nope")

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
}
