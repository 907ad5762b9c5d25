package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bazarly/internal/domain/entity"
	"bazarly/pkg/errors"
)

func newEngagementFixture() (*mockUserRepository, *mockProductRepository, *EngagementUseCase) {
	userRepo := new(mockUserRepository)
	productRepo := new(mockProductRepository)
	return userRepo, productRepo, NewEngagementUseCase(userRepo, productRepo)
}

func testProduct(id string) *entity.Product {
	return &entity.Product{ID: id, Name: "Test Product", Status: "active"}
}

func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(testProduct("p1"), nil)

	// First call likes: membership flips on, counter goes 0 -> 1.
	userRepo.On("ToggleLike", ctx, "u1", "p1").Return(true, nil).Once()
	productRepo.On("AdjustLikeCount", ctx, "p1", int64(1)).Return(int64(1), nil).Once()

	result, err := uc.ToggleLike(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, result.IsLiked)
	assert.Equal(t, int64(1), result.LikeCount)

	// Second call unlikes: membership flips off, counter returns to 0.
	userRepo.On("ToggleLike", ctx, "u1", "p1").Return(false, nil).Once()
	productRepo.On("AdjustLikeCount", ctx, "p1", int64(-1)).Return(int64(0), nil).Once()

	result, err = uc.ToggleLike(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.False(t, result.IsLiked)
	assert.Equal(t, int64(0), result.LikeCount)

	userRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestToggleLikeUnknownProduct(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "missing").Return(nil, errors.NotFound("Product", nil))

	_, err := uc.ToggleLike(ctx, "u1", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	userRepo.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLikeEmptyProductID(t *testing.T) {
	_, _, uc := newEngagementFixture()

	_, err := uc.ToggleLike(context.Background(), "u1", "  ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestToggleLikeReportsCounterFailure(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(testProduct("p1"), nil)
	userRepo.On("ToggleLike", ctx, "u1", "p1").Return(true, nil)
	productRepo.On("AdjustLikeCount", ctx, "p1", int64(1)).Return(int64(0), errors.Internal("write failed", nil))

	_, err := uc.ToggleLike(ctx, "u1", "p1")
	require.Error(t, err)
}

func TestRecordViewAccumulates(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(testProduct("p1"), nil)
	userRepo.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", Role: "user"}, nil)
	userRepo.On("UpsertView", ctx, "u1", "p1", mock.AnythingOfType("time.Time")).Return(nil).Times(3)

	// Views never toggle: each call adds one.
	productRepo.On("IncrementViewCount", ctx, "p1").Return(int64(1), nil).Once()
	productRepo.On("IncrementViewCount", ctx, "p1").Return(int64(2), nil).Once()
	productRepo.On("IncrementViewCount", ctx, "p1").Return(int64(3), nil).Once()

	actor := ActorRef{UserID: "u1"}
	for want := int64(1); want <= 3; want++ {
		result, err := uc.RecordView(ctx, actor, "p1")
		require.NoError(t, err)
		assert.Equal(t, want, result.ViewCount)
	}

	productRepo.AssertExpectations(t)
}

func TestRecordViewProvisionsDeviceActor(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(testProduct("p1"), nil)
	userRepo.On("GetByDeviceID", ctx, "abc-123").Return(nil, errors.NotFound("User", nil)).Once()
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.DeviceID == "abc-123" && u.Role == "device"
	})).Return(nil).Once()
	userRepo.On("UpsertView", ctx, mock.AnythingOfType("string"), "p1", mock.AnythingOfType("time.Time")).Return(nil)
	productRepo.On("IncrementViewCount", ctx, "p1").Return(int64(1), nil)

	result, err := uc.RecordView(ctx, ActorRef{DeviceID: "abc-123"}, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ViewCount)

	userRepo.AssertExpectations(t)
}

func TestRecordViewRequiresAnActor(t *testing.T) {
	_, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(testProduct("p1"), nil)

	_, err := uc.RecordView(ctx, ActorRef{}, "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	userRepo, _, uc := newEngagementFixture()
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := uc.SubmitReview(ctx, "u1", "p1", rating, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, "INVALID_RATING"))
	}

	userRepo.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReviewRecomputesAverage(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(testProduct("p1"), nil)
	userRepo.On("UpsertReview", ctx, "u1", "p1", 4, "solid", mock.AnythingOfType("time.Time")).Return(nil)

	// Two reviewers: 5 and 4 average to 4.5.
	userRepo.On("RatingsFor", ctx, "p1").Return([]int{5, 4}, nil)
	productRepo.On("SetRatingStats", ctx, "p1", 4.5, int64(2)).Return(nil)

	result, err := uc.SubmitReview(ctx, "u1", "p1", 4, "solid")
	require.NoError(t, err)
	assert.Equal(t, 4.5, result.AverageRating)
	assert.Equal(t, int64(2), result.ReviewCount)

	productRepo.AssertExpectations(t)
}

func TestResubmittedReviewReplacesRating(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(testProduct("p1"), nil)

	// First review: rating 5, single reviewer.
	userRepo.On("UpsertReview", ctx, "u1", "p1", 5, "", mock.AnythingOfType("time.Time")).Return(nil).Once()
	userRepo.On("RatingsFor", ctx, "p1").Return([]int{5}, nil).Once()
	productRepo.On("SetRatingStats", ctx, "p1", 5.0, int64(1)).Return(nil).Once()

	result, err := uc.SubmitReview(ctx, "u1", "p1", 5, "")
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.AverageRating)
	assert.Equal(t, int64(1), result.ReviewCount)

	// Same user re-reviews with 3: still one review, latest rating wins.
	userRepo.On("UpsertReview", ctx, "u1", "p1", 3, "", mock.AnythingOfType("time.Time")).Return(nil).Once()
	userRepo.On("RatingsFor", ctx, "p1").Return([]int{3}, nil).Once()
	productRepo.On("SetRatingStats", ctx, "p1", 3.0, int64(1)).Return(nil).Once()

	result, err = uc.SubmitReview(ctx, "u1", "p1", 3, "")
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.AverageRating)
	assert.Equal(t, int64(1), result.ReviewCount)
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(testProduct("p1"), nil)
	userRepo.On("UpsertReview", ctx, "u1", "p1", 4, "", mock.AnythingOfType("time.Time")).Return(nil)

	// (5+4+4)/3 = 4.333... rounds to 4.3.
	userRepo.On("RatingsFor", ctx, "p1").Return([]int{5, 4, 4}, nil)
	productRepo.On("SetRatingStats", ctx, "p1", 4.3, int64(3)).Return(nil)

	result, err := uc.SubmitReview(ctx, "u1", "p1", 4, "")
	require.NoError(t, err)
	assert.Equal(t, 4.3, result.AverageRating)
}

func TestRecomputeProductRebuildsAllCounters(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	userRepo.On("CountLikes", ctx, "p1").Return(int64(2), nil)
	userRepo.On("SumViews", ctx, "p1").Return(int64(7), nil)
	userRepo.On("RatingsFor", ctx, "p1").Return([]int{5, 4, 4}, nil)
	productRepo.On("SetEngagementCounters", ctx, "p1", int64(2), int64(7), 4.3, int64(3)).Return(nil)

	require.NoError(t, uc.RecomputeProduct(ctx, "p1"))
	productRepo.AssertExpectations(t)
}

func TestRecomputeProductWithNoEngagement(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	userRepo.On("CountLikes", ctx, "p1").Return(int64(0), nil)
	userRepo.On("SumViews", ctx, "p1").Return(int64(0), nil)
	userRepo.On("RatingsFor", ctx, "p1").Return([]int{}, nil)
	productRepo.On("SetEngagementCounters", ctx, "p1", int64(0), int64(0), 0.0, int64(0)).Return(nil)

	require.NoError(t, uc.RecomputeProduct(ctx, "p1"))
}

func TestRecomputeAllContinuesPastFailures(t *testing.T) {
	userRepo, productRepo, uc := newEngagementFixture()
	ctx := context.Background()

	productRepo.On("ListIDs", ctx).Return([]string{"p1", "p2", "p3"}, nil)

	userRepo.On("CountLikes", ctx, "p1").Return(int64(1), nil)
	userRepo.On("CountLikes", ctx, "p2").Return(int64(0), errors.Internal("query failed", nil))
	userRepo.On("CountLikes", ctx, "p3").Return(int64(0), nil)

	for _, id := range []string{"p1", "p3"} {
		userRepo.On("SumViews", ctx, id).Return(int64(0), nil)
		userRepo.On("RatingsFor", ctx, id).Return([]int{}, nil)
		productRepo.On("SetEngagementCounters", ctx, id, mock.AnythingOfType("int64"), int64(0), 0.0, int64(0)).Return(nil)
	}

	summary, err := uc.RecomputeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Scanned)
	assert.Equal(t, 2, summary.Repaired)
	assert.Equal(t, 1, summary.Failed)
}
