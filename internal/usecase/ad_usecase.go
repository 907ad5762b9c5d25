package usecase

import (
	"context"
	"time"

	"bazarly/internal/domain/entity"
	"bazarly/internal/domain/repository"
	"bazarly/pkg/errors"
)

type AdUseCase struct {
	adRepo      repository.AdRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

func NewAdUseCase(
	adRepo repository.AdRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) *AdUseCase {
	return &AdUseCase{
		adRepo:      adRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

type AdInput struct {
	Title       string
	Image       string
	Placement   string
	ProductID   string
	StoreID     string
	ExternalURL string
	StartsAt    time.Time
	EndsAt      time.Time
	Status      string
}

func (uc *AdUseCase) CreateAd(ctx context.Context, input AdInput) (*entity.Ad, error) {
	if err := uc.validateTarget(ctx, input); err != nil {
		return nil, err
	}

	ad := &entity.Ad{
		Title:       input.Title,
		Image:       input.Image,
		Placement:   input.Placement,
		ProductID:   input.ProductID,
		StoreID:     input.StoreID,
		ExternalURL: input.ExternalURL,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Status:      input.Status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

func (uc *AdUseCase) GetAdByID(ctx context.Context, id string) (*entity.Ad, error) {
	return uc.adRepo.GetByID(ctx, id)
}

// ListLiveAds returns the ads currently inside their serving window for a
// placement. The time-window cut happens client-side; the store only
// filters on placement and status.
func (uc *AdUseCase) ListLiveAds(ctx context.Context, placement string) ([]*entity.Ad, error) {
	filter := map[string]interface{}{"status": "active"}
	if placement != "" {
		filter["placement"] = placement
	}

	ads, _, err := uc.adRepo.List(ctx, filter, 0, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	live := make([]*entity.Ad, 0, len(ads))
	for _, ad := range ads {
		if ad.Live(now) {
			live = append(live, ad)
		}
	}

	return live, nil
}

func (uc *AdUseCase) ListAds(ctx context.Context, status string, page, limit int) ([]*entity.Ad, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.adRepo.List(ctx, filter, limit, offset)
}

func (uc *AdUseCase) UpdateAd(ctx context.Context, id string, input AdInput) (*entity.Ad, error) {
	ad, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.validateTarget(ctx, input); err != nil {
		return nil, err
	}

	ad.Title = input.Title
	ad.Image = input.Image
	ad.Placement = input.Placement
	ad.ProductID = input.ProductID
	ad.StoreID = input.StoreID
	ad.ExternalURL = input.ExternalURL
	ad.StartsAt = input.StartsAt
	ad.EndsAt = input.EndsAt
	ad.Status = input.Status
	ad.UpdatedAt = time.Now()

	if err := uc.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

func (uc *AdUseCase) DeleteAd(ctx context.Context, id string) error {
	if _, err := uc.adRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.adRepo.Delete(ctx, id)
}

func (uc *AdUseCase) validateTarget(ctx context.Context, input AdInput) error {
	targets := 0
	if input.ProductID != "" {
		targets++
	}
	if input.StoreID != "" {
		targets++
	}
	if input.ExternalURL != "" {
		targets++
	}
	if targets > 1 {
		return errors.BadRequest("Ad may target a product, a store, or an external URL, not several", nil)
	}

	if input.ProductID != "" {
		if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
			return errors.BadRequest("Invalid product target", err)
		}
	}
	if input.StoreID != "" {
		if _, err := uc.storeRepo.GetByID(ctx, input.StoreID); err != nil {
			return errors.BadRequest("Invalid store target", err)
		}
	}

	return nil
}
