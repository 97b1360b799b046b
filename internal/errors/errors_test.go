package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkSurvivesWrapping(t *testing.T) {
	err := NewError("invoice not found: inv1").
		WithHint("Invoice not found.").
		Mark(ErrNotFound)

	wrapped := fmt.Errorf("load edit form: %w", err)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsDatabase(wrapped))
	assert.Equal(t, "Invoice not found.", Hint(wrapped, "fallback"))
	assert.Equal(t, http.StatusNotFound, HTTPStatusFromErr(wrapped))
}

func TestWithErrorKeepsCause(t *testing.T) {
	cause := fmt.Errorf("disk I/O error")
	err := WithError(cause).WithMessage("failed to insert invoice").Mark(ErrDatabase)

	assert.True(t, IsDatabase(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to insert invoice")
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(err))
}

func TestHintFallback(t *testing.T) {
	assert.Equal(t, "Something went wrong.", Hint(fmt.Errorf("boom"), "Something went wrong."))
}

func TestHTTPStatusFromErr(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatusFromErr(NewError("bad").Mark(ErrValidation)))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatusFromErr(NewError("who").Mark(ErrUnauthenticated)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(fmt.Errorf("unmarked")))
}
