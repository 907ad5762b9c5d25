package entity

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLikeDeltaClampsAtZero(t *testing.T) {
	p := &Product{LikeCount: 1}
	assert.Equal(t, int64(2), p.ApplyLikeDelta(1))
	assert.Equal(t, int64(0), p.ApplyLikeDelta(-1))

	drifted := &Product{LikeCount: 0}
	assert.Equal(t, int64(0), drifted.ApplyLikeDelta(-1), "a drifted counter heals to zero, never negative")
}

func TestDeletedAtStoresExplicitNull(t *testing.T) {
	field, ok := reflect.TypeOf(Product{}).FieldByName("DeletedAt")
	require.True(t, ok)

	// The soft-delete filters query deletedAt == null. Firestore equality
	// only matches fields explicitly stored as null, so omitempty here
	// would make live products invisible to every filtered query,
	// including the delete guard's reference count.
	assert.Equal(t, "deletedAt", field.Tag.Get("firestore"))
}
