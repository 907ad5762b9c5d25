package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordViewAccumulatesPerProduct(t *testing.T) {
	u := &User{}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	u.RecordView("p1", first)
	u.RecordView("p2", first)
	u.RecordView("p1", second)

	require.Len(t, u.ViewedProducts, 2)
	assert.Equal(t, int64(2), u.ViewedProducts[0].ViewCount)
	assert.Equal(t, second, u.ViewedProducts[0].LastViewed)
	assert.Equal(t, int64(1), u.ViewedProducts[1].ViewCount)
}

func TestUpsertReviewKeepsOriginalCreatedAt(t *testing.T) {
	u := &User{}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	u.UpsertReview("p1", 5, "great", first)
	u.UpsertReview("p1", 3, "changed my mind", second)

	require.Len(t, u.Reviews, 1)
	assert.Equal(t, 3, u.Reviews[0].Rating)
	assert.Equal(t, "changed my mind", u.Reviews[0].Comment)
	assert.Equal(t, first, u.Reviews[0].CreatedAt, "resubmitting keeps the first review's CreatedAt")
	assert.Equal(t, second, u.Reviews[0].UpdatedAt)
}

func TestUpsertReviewAppendsPerProduct(t *testing.T) {
	u := &User{}
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	u.UpsertReview("p1", 5, "", at)
	u.UpsertReview("p2", 4, "", at)

	require.Len(t, u.Reviews, 2)
	assert.Equal(t, "p1", u.Reviews[0].ProductID)
	assert.Equal(t, "p2", u.Reviews[1].ProductID)
}
