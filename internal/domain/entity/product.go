package entity

import (
	"time"
)

type ProductImage struct {
	ID           string `json:"id" firestore:"id"`
	URL          string `json:"url" firestore:"url"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
}

type Product struct {
	ID             string  `json:"id" firestore:"id"`
	StoreID        string  `json:"store_id" firestore:"storeId"`
	BrandID        string  `json:"brand_id" firestore:"brandId"`
	CompanyID      string  `json:"company_id" firestore:"companyId"`
	MarketID       string  `json:"market_id" firestore:"marketId"`
	CategoryID     string  `json:"category_id" firestore:"categoryId"`
	CategoryTypeID string  `json:"category_type_id,omitempty" firestore:"categoryTypeId,omitempty"`
	Name           string  `json:"name" firestore:"name"`
	Slug           string  `json:"slug" firestore:"slug"`
	Description    string  `json:"description" firestore:"description"`
	Price          float64 `json:"price" firestore:"price"`
	Barcode        string  `json:"barcode,omitempty" firestore:"barcode,omitempty"`

	Images   []ProductImage `json:"images" firestore:"images"`
	Status   string         `json:"status" firestore:"status"`
	Stock    int            `json:"stock" firestore:"stock"`
	Featured bool           `json:"featured" firestore:"featured"`

	// Denormalized engagement counters. Derived state: only the counter
	// reconciler and the batch recompute may write these fields.
	LikeCount     int64   `json:"like_count" firestore:"likeCount"`
	ViewCount     int64   `json:"view_count" firestore:"viewCount"`
	AverageRating float64 `json:"average_rating" firestore:"averageRating"`
	ReviewCount   int64   `json:"review_count" firestore:"reviewCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
	// The firestore tag must not carry omitempty: the soft-delete filters
	// query deletedAt == null, and Firestore equality only matches fields
	// explicitly stored as null, never absent ones. Live products therefore
	// have to persist the null value.
	DeletedAt *time.Time `json:"deleted_at,omitempty" firestore:"deletedAt"`
}

// ApplyLikeDelta returns the like count after delta, clamped at zero.
// A negative count is a bug state to correct, not propagate.
func (p *Product) ApplyLikeDelta(delta int64) int64 {
	total := p.LikeCount + delta
	if total < 0 {
		total = 0
	}
	return total
}
