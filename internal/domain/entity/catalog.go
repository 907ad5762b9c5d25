package entity

import (
	"time"
)

// ParentKind identifies a catalog entity that products reference by
// foreign key. Deleting a parent is gated on no product referencing it.
type ParentKind string

const (
	KindStore    ParentKind = "stores"
	KindBrand    ParentKind = "brands"
	KindCompany  ParentKind = "companies"
	KindMarket   ParentKind = "markets"
	KindCategory ParentKind = "categories"
)

// ProductField returns the product foreign-key field for this kind.
func (k ParentKind) ProductField() string {
	switch k {
	case KindStore:
		return "storeId"
	case KindBrand:
		return "brandId"
	case KindCompany:
		return "companyId"
	case KindMarket:
		return "marketId"
	case KindCategory:
		return "categoryId"
	}
	return ""
}

func (k ParentKind) Valid() bool {
	return k.ProductField() != ""
}

type Store struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Slug        string    `json:"slug" firestore:"slug"`
	Description string    `json:"description" firestore:"description"`
	Logo        string    `json:"logo,omitempty" firestore:"logo,omitempty"`
	Banner      string    `json:"banner,omitempty" firestore:"banner,omitempty"`
	Phone       string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address     string    `json:"address,omitempty" firestore:"address,omitempty"`
	MarketID    string    `json:"market_id,omitempty" firestore:"marketId,omitempty"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Brand struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Slug      string    `json:"slug" firestore:"slug"`
	Logo      string    `json:"logo,omitempty" firestore:"logo,omitempty"`
	CompanyID string    `json:"company_id,omitempty" firestore:"companyId,omitempty"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Company struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Slug      string    `json:"slug" firestore:"slug"`
	Logo      string    `json:"logo,omitempty" firestore:"logo,omitempty"`
	Country   string    `json:"country,omitempty" firestore:"country,omitempty"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Market struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Slug      string    `json:"slug" firestore:"slug"`
	City      string    `json:"city,omitempty" firestore:"city,omitempty"`
	Address   string    `json:"address,omitempty" firestore:"address,omitempty"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// CategoryType is a sub-type inside a category, referenced by products
// through CategoryTypeID.
type CategoryType struct {
	ID     string `json:"id" firestore:"id"`
	Name   string `json:"name" firestore:"name"`
	NameKu string `json:"name_ku,omitempty" firestore:"nameKu,omitempty"`
	NameAr string `json:"name_ar,omitempty" firestore:"nameAr,omitempty"`
	Icon   string `json:"icon,omitempty" firestore:"icon,omitempty"`
}

type Category struct {
	ID        string         `json:"id" firestore:"id"`
	Name      string         `json:"name" firestore:"name"`
	NameKu    string         `json:"name_ku,omitempty" firestore:"nameKu,omitempty"`
	NameAr    string         `json:"name_ar,omitempty" firestore:"nameAr,omitempty"`
	Slug      string         `json:"slug" firestore:"slug"`
	Icon      string         `json:"icon,omitempty" firestore:"icon,omitempty"`
	Types     []CategoryType `json:"types" firestore:"types"`
	Status    string         `json:"status" firestore:"status"`
	CreatedAt time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at" firestore:"updatedAt"`
}
