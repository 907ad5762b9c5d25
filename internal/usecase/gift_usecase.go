package usecase

import (
	"context"
	"time"

	"bazarly/internal/domain/entity"
	"bazarly/internal/domain/repository"
)

type GiftUseCase struct {
	giftRepo repository.GiftRepository
}

func NewGiftUseCase(giftRepo repository.GiftRepository) *GiftUseCase {
	return &GiftUseCase{giftRepo: giftRepo}
}

type GiftInput struct {
	Name        string
	NameKu      string
	NameAr      string
	Description string
	Image       string
	Points      int
	Status      string
}

func (uc *GiftUseCase) CreateGift(ctx context.Context, input GiftInput) (*entity.Gift, error) {
	gift := &entity.Gift{
		Name:        input.Name,
		NameKu:      input.NameKu,
		NameAr:      input.NameAr,
		Description: input.Description,
		Image:       input.Image,
		Points:      input.Points,
		Status:      input.Status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.giftRepo.Create(ctx, gift); err != nil {
		return nil, err
	}

	return gift, nil
}

func (uc *GiftUseCase) GetGiftByID(ctx context.Context, id string) (*entity.Gift, error) {
	return uc.giftRepo.GetByID(ctx, id)
}

func (uc *GiftUseCase) ListGifts(ctx context.Context, status string, page, limit int) ([]*entity.Gift, int64, error) {
	filter := make(map[string]interface{})
	if status == "" {
		status = "active"
	}
	filter["status"] = status

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.giftRepo.List(ctx, filter, limit, offset)
}

func (uc *GiftUseCase) UpdateGift(ctx context.Context, id string, input GiftInput) (*entity.Gift, error) {
	gift, err := uc.giftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	gift.Name = input.Name
	gift.NameKu = input.NameKu
	gift.NameAr = input.NameAr
	gift.Description = input.Description
	gift.Image = input.Image
	gift.Points = input.Points
	gift.Status = input.Status
	gift.UpdatedAt = time.Now()

	if err := uc.giftRepo.Update(ctx, gift); err != nil {
		return nil, err
	}

	return gift, nil
}

func (uc *GiftUseCase) DeleteGift(ctx context.Context, id string) error {
	if _, err := uc.giftRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.giftRepo.Delete(ctx, id)
}
