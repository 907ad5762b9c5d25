package entity

import (
	"time"
)

type Gift struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	NameKu      string    `json:"name_ku,omitempty" firestore:"nameKu,omitempty"`
	NameAr      string    `json:"name_ar,omitempty" firestore:"nameAr,omitempty"`
	Description string    `json:"description" firestore:"description"`
	Image       string    `json:"image,omitempty" firestore:"image,omitempty"`
	Points      int       `json:"points" firestore:"points"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
