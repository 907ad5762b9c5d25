package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"bazarly/internal/domain/entity"
	"bazarly/internal/domain/repository"
	"bazarly/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	// Counters start at zero and are owned by the reconciler from here on.
	product.LikeCount = 0
	product.ViewCount = 0
	product.AverageRating = 0
	product.ReviewCount = 0

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	// Exclude soft-deleted products.
	query = query.Where("deletedAt", "==", nil)

	if sort != "" {
		parts := strings.Split(sort, "_")
		field := parts[0]
		order := firestore.Asc
		if len(parts) > 1 && parts[1] == "desc" {
			order = firestore.Desc
		}
		query = query.OrderBy(field, order)
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, total, nil
}

func (r *firestoreProductRepository) SearchByName(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	query = strings.ToLower(query)

	baseQuery := r.client.Collection("products").Query.Where("deletedAt", "==", nil)
	for key, value := range filter {
		baseQuery = baseQuery.Where(key, "==", value)
	}

	// Firestore has no full-text search; filter the candidate set
	// client-side.
	docs, err := baseQuery.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to search products", err)
	}

	var matched []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(product.Name), query) {
			matched = append(matched, &product)
		}
	}

	total := int64(len(matched))

	start := offset
	end := offset + limit
	if start >= len(matched) {
		return []*entity.Product{}, total, nil
	}
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

// Update writes editable fields only. The counter fields are deliberately
// absent from the field-path list so an administrative edit can never
// reset derived engagement state.
func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := []firestore.Update{
		{Path: "storeId", Value: product.StoreID},
		{Path: "brandId", Value: product.BrandID},
		{Path: "companyId", Value: product.CompanyID},
		{Path: "marketId", Value: product.MarketID},
		{Path: "categoryId", Value: product.CategoryID},
		{Path: "categoryTypeId", Value: product.CategoryTypeID},
		{Path: "name", Value: product.Name},
		{Path: "slug", Value: product.Slug},
		{Path: "description", Value: product.Description},
		{Path: "price", Value: product.Price},
		{Path: "barcode", Value: product.Barcode},
		{Path: "images", Value: product.Images},
		{Path: "status", Value: product.Status},
		{Path: "stock", Value: product.Stock},
		{Path: "featured", Value: product.Featured},
		{Path: "updatedAt", Value: time.Now()},
	}

	_, err := r.client.Collection("products").Doc(product.ID).Update(ctx, updates)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now()
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "deletedAt", Value: now},
		{Path: "status", Value: "deleted"},
		{Path: "updatedAt", Value: now},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) CountByParentField(ctx context.Context, field, parentID string) (int64, error) {
	docs, err := r.client.Collection("products").
		Where(field, "==", parentID).
		Where("deletedAt", "==", nil).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count referencing products", err)
	}

	return int64(len(docs)), nil
}

func (r *firestoreProductRepository) IncrementViewCount(ctx context.Context, id string) (int64, error) {
	docRef := r.client.Collection("products").Doc(id)

	var total int64
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return err
		}

		total = product.ViewCount + 1
		return tx.Update(docRef, []firestore.Update{
			{Path: "viewCount", Value: total},
		})
	})
	if err != nil {
		if isNotFound(err) {
			return 0, errors.NotFound("Product", err)
		}
		return 0, errors.Internal("Failed to increment product views", err)
	}

	return total, nil
}

func (r *firestoreProductRepository) AdjustLikeCount(ctx context.Context, id string, delta int64) (int64, error) {
	docRef := r.client.Collection("products").Doc(id)

	var total int64
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return err
		}

		total = product.ApplyLikeDelta(delta)
		return tx.Update(docRef, []firestore.Update{
			{Path: "likeCount", Value: total},
		})
	})
	if err != nil {
		if isNotFound(err) {
			return 0, errors.NotFound("Product", err)
		}
		return 0, errors.Internal("Failed to adjust product likes", err)
	}

	return total, nil
}

func (r *firestoreProductRepository) SetRatingStats(ctx context.Context, id string, averageRating float64, reviewCount int64) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "averageRating", Value: averageRating},
		{Path: "reviewCount", Value: reviewCount},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product rating", err)
	}

	return nil
}

func (r *firestoreProductRepository) SetEngagementCounters(ctx context.Context, id string, likeCount, viewCount int64, averageRating float64, reviewCount int64) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "likeCount", Value: likeCount},
		{Path: "viewCount", Value: viewCount},
		{Path: "averageRating", Value: averageRating},
		{Path: "reviewCount", Value: reviewCount},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to write product counters", err)
	}

	return nil
}

func (r *firestoreProductRepository) ListIDs(ctx context.Context) ([]string, error) {
	iter := r.client.Collection("products").
		Where("deletedAt", "==", nil).
		Select().
		Documents(ctx)

	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list product ids", err)
		}
		ids = append(ids, doc.Ref.ID)
	}

	return ids, nil
}
