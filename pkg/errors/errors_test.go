package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParentInUseCarriesBlockingCount(t *testing.T) {
	err := ParentInUse("Brand", 2)

	assert.Equal(t, "PARENT_IN_USE", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Contains(t, err.Message, "Brand")

	details := err.Details.(map[string]interface{})
	assert.Equal(t, int64(2), details["blocking_count"])
}

func TestInvalidRating(t *testing.T) {
	err := InvalidRating(7)

	assert.Equal(t, "INVALID_RATING", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Contains(t, err.Message, "7")
}

func TestIsMatchesWrappedCode(t *testing.T) {
	base := NotFound("Product", nil)

	assert.True(t, Is(base, "NOT_FOUND"))
	assert.False(t, Is(base, "BAD_REQUEST"))
	assert.False(t, Is(nil, "NOT_FOUND"))
}
