package entity

import (
	"time"
)

type Ad struct {
	ID        string `json:"id" firestore:"id"`
	Title     string `json:"title" firestore:"title"`
	Image     string `json:"image" firestore:"image"`
	Placement string `json:"placement" firestore:"placement"`

	// Link target: at most one of these is set.
	ProductID   string `json:"product_id,omitempty" firestore:"productId,omitempty"`
	StoreID     string `json:"store_id,omitempty" firestore:"storeId,omitempty"`
	ExternalURL string `json:"external_url,omitempty" firestore:"externalUrl,omitempty"`

	StartsAt  time.Time `json:"starts_at" firestore:"startsAt"`
	EndsAt    time.Time `json:"ends_at" firestore:"endsAt"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Live reports whether the ad should be served at t.
func (a *Ad) Live(t time.Time) bool {
	if a.Status != "active" {
		return false
	}
	if t.Before(a.StartsAt) {
		return false
	}
	if !a.EndsAt.IsZero() && t.After(a.EndsAt) {
		return false
	}
	return true
}
