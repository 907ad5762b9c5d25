package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"bazarly/internal/domain/entity"
	"bazarly/internal/domain/repository"
	"bazarly/pkg/errors"
	"bazarly/pkg/logger"
)

// EngagementUseCase keeps the denormalized product counters (likeCount,
// viewCount, averageRating, reviewCount) consistent with the per-user
// engagement records. The user-document write and the product-counter
// write are separate store operations; a failure between them leaves a
// transient drift that RecomputeProduct corrects.
type EngagementUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewEngagementUseCase(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) *EngagementUseCase {
	return &EngagementUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

type LikeResult struct {
	IsLiked   bool  `json:"is_liked"`
	LikeCount int64 `json:"like_count"`
}

type ViewResult struct {
	ViewCount int64 `json:"view_count"`
}

type ReviewResult struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// ActorRef identifies who triggered an engagement event: a registered
// user by UID, or an anonymous client by device identifier.
type ActorRef struct {
	UserID   string
	DeviceID string
}

func (uc *EngagementUseCase) ToggleLike(ctx context.Context, userID, productID string) (*LikeResult, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errors.BadRequest("Product id is required", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	liked, err := uc.userRepo.ToggleLike(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	var delta int64 = 1
	if !liked {
		delta = -1
	}

	count, err := uc.productRepo.AdjustLikeCount(ctx, productID, delta)
	if err != nil {
		// The membership write already committed; the counter heals on
		// the next recompute.
		logger.Warn("like counter update failed for product %s: %v", productID, err)
		return nil, err
	}

	return &LikeResult{IsLiked: liked, LikeCount: count}, nil
}

func (uc *EngagementUseCase) RecordView(ctx context.Context, actor ActorRef, productID string) (*ViewResult, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errors.BadRequest("Product id is required", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	user, err := uc.resolveActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpsertView(ctx, user.ID, productID, time.Now()); err != nil {
		return nil, err
	}

	// Unconditional: every view call counts, unlike likes which toggle.
	count, err := uc.productRepo.IncrementViewCount(ctx, productID)
	if err != nil {
		logger.Warn("view counter update failed for product %s: %v", productID, err)
		return nil, err
	}

	return &ViewResult{ViewCount: count}, nil
}

func (uc *EngagementUseCase) SubmitReview(ctx context.Context, userID, productID string, rating int, comment string) (*ReviewResult, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errors.BadRequest("Product id is required", nil)
	}
	if rating < 1 || rating > 5 {
		return nil, errors.InvalidRating(rating)
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpsertReview(ctx, userID, productID, rating, comment, time.Now()); err != nil {
		return nil, err
	}

	// Always a full recompute over every contributing review, never an
	// incremental running average.
	average, count, err := uc.ratingStats(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.SetRatingStats(ctx, productID, average, count); err != nil {
		logger.Warn("rating stats update failed for product %s: %v", productID, err)
		return nil, err
	}

	return &ReviewResult{AverageRating: average, ReviewCount: count}, nil
}

// GetUserEngagement returns the caller's own engagement records.
func (uc *EngagementUseCase) GetUserEngagement(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// RecomputeProduct rebuilds all four counters from the primary engagement
// records and writes them in a single document update. Idempotent; this
// is the reconciliation path that corrects drift from the incremental
// handlers.
func (uc *EngagementUseCase) RecomputeProduct(ctx context.Context, productID string) error {
	likeCount, err := uc.userRepo.CountLikes(ctx, productID)
	if err != nil {
		return err
	}

	viewCount, err := uc.userRepo.SumViews(ctx, productID)
	if err != nil {
		return err
	}

	average, reviewCount, err := uc.ratingStats(ctx, productID)
	if err != nil {
		return err
	}

	return uc.productRepo.SetEngagementCounters(ctx, productID, likeCount, viewCount, average, reviewCount)
}

type RecomputeSummary struct {
	Scanned  int
	Repaired int
	Failed   int
}

// RecomputeAll repairs every non-deleted product. Reachable from the
// admin recompute endpoint and the standalone recompute tool.
func (uc *EngagementUseCase) RecomputeAll(ctx context.Context) (*RecomputeSummary, error) {
	ids, err := uc.productRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	summary := &RecomputeSummary{}
	for _, id := range ids {
		summary.Scanned++
		if err := uc.RecomputeProduct(ctx, id); err != nil {
			summary.Failed++
			logger.Warn("recompute failed for product %s: %v", id, err)
			continue
		}
		summary.Repaired++
	}

	return summary, nil
}

func (uc *EngagementUseCase) ratingStats(ctx context.Context, productID string) (float64, int64, error) {
	ratings, err := uc.userRepo.RatingsFor(ctx, productID)
	if err != nil {
		return 0, 0, err
	}

	if len(ratings) == 0 {
		return 0, 0, nil
	}

	var sum int
	for _, r := range ratings {
		sum += r
	}

	average := float64(sum) / float64(len(ratings))
	average = math.Round(average*10) / 10

	return average, int64(len(ratings)), nil
}

// resolveActor maps an ActorRef to a user document, auto-provisioning a
// device user on first use.
func (uc *EngagementUseCase) resolveActor(ctx context.Context, actor ActorRef) (*entity.User, error) {
	if actor.UserID != "" {
		return uc.userRepo.GetByID(ctx, actor.UserID)
	}

	if strings.TrimSpace(actor.DeviceID) == "" {
		return nil, errors.BadRequest("Device id is required for anonymous views", nil)
	}

	user, err := uc.userRepo.GetByDeviceID(ctx, actor.DeviceID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user = &entity.User{
		ID:       "device_" + uuid.NewString(),
		DeviceID: actor.DeviceID,
		Role:     "device",
		Status:   "active",
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("provisioned anonymous device user %s", user.ID)
	return user, nil
}
