package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("missing")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidArg("bad")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(AlreadyExists("dup")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal("boom")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap(CodeInternal, "wrapped", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "wrapped")
	assert.Contains(t, err.Error(), "cause")
}
