package entity

import (
	"time"
)

// ViewedProduct is one view record inside a user document. At most one
// entry exists per product; repeat views bump ViewCount.
type ViewedProduct struct {
	ProductID  string    `json:"product_id" firestore:"productId"`
	ViewCount  int64     `json:"view_count" firestore:"viewCount"`
	LastViewed time.Time `json:"last_viewed" firestore:"lastViewed"`
}

// ProductReview is one review inside a user document. At most one entry
// exists per product; resubmitting replaces the entry but keeps the
// original CreatedAt.
type ProductReview struct {
	ProductID string    `json:"product_id" firestore:"productId"`
	Rating    int       `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email,omitempty" firestore:"email,omitempty"`
	Username string `json:"username,omitempty" firestore:"username,omitempty"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role     string `json:"role" firestore:"role"`
	Status   string `json:"status" firestore:"status"`

	// DeviceID is set for anonymous actors auto-provisioned on their
	// first tracked view.
	DeviceID string `json:"device_id,omitempty" firestore:"deviceId,omitempty"`

	LikedProducts  []string        `json:"liked_products" firestore:"likedProducts"`
	ViewedProducts []ViewedProduct `json:"viewed_products" firestore:"viewedProducts"`
	Reviews        []ProductReview `json:"reviews" firestore:"reviews"`

	// Parallel index arrays kept in sync with ViewedProducts and Reviews.
	// Firestore cannot run array-contains queries against arrays of maps,
	// so batch recompute matches on these instead of scanning every user.
	ViewedProductIDs   []string `json:"-" firestore:"viewedProductIds"`
	ReviewedProductIDs []string `json:"-" firestore:"reviewedProductIds"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// HasLiked reports membership of productID in the user's liked set.
func (u *User) HasLiked(productID string) bool {
	for _, id := range u.LikedProducts {
		if id == productID {
			return true
		}
	}
	return false
}

// ReviewFor returns the user's review for productID, or nil.
func (u *User) ReviewFor(productID string) *ProductReview {
	for i := range u.Reviews {
		if u.Reviews[i].ProductID == productID {
			return &u.Reviews[i]
		}
	}
	return nil
}

// RecordView bumps the existing view entry for productID or appends a
// fresh one with count 1.
func (u *User) RecordView(productID string, at time.Time) {
	for i := range u.ViewedProducts {
		if u.ViewedProducts[i].ProductID == productID {
			u.ViewedProducts[i].ViewCount++
			u.ViewedProducts[i].LastViewed = at
			return
		}
	}
	u.ViewedProducts = append(u.ViewedProducts, ViewedProduct{
		ProductID:  productID,
		ViewCount:  1,
		LastViewed: at,
	})
}

// UpsertReview replaces the user's review for productID, keeping the
// original CreatedAt, or appends a new one.
func (u *User) UpsertReview(productID string, rating int, comment string, at time.Time) {
	for i := range u.Reviews {
		if u.Reviews[i].ProductID == productID {
			u.Reviews[i].Rating = rating
			u.Reviews[i].Comment = comment
			u.Reviews[i].UpdatedAt = at
			return
		}
	}
	u.Reviews = append(u.Reviews, ProductReview{
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: at,
		UpdatedAt: at,
	})
}
