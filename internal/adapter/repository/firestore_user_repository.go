package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"bazarly/internal/domain/entity"
	"bazarly/internal/domain/repository"
	"bazarly/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if user.LikedProducts == nil {
		user.LikedProducts = []string{}
	}
	if user.ViewedProducts == nil {
		user.ViewedProducts = []entity.ViewedProduct{}
	}
	if user.Reviews == nil {
		user.Reviews = []entity.ProductReview{}
	}
	if user.ViewedProductIDs == nil {
		user.ViewedProductIDs = []string{}
	}
	if user.ReviewedProductIDs == nil {
		user.ReviewedProductIDs = []string{}
	}

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *firestoreUserRepository) GetByDeviceID(ctx context.Context, deviceID string) (*entity.User, error) {
	return r.getByField(ctx, "deviceId", deviceID)
}

func (r *firestoreUserRepository) getByField(ctx context.Context, field, value string) (*entity.User, error) {
	iter := r.client.Collection("users").Where(field, "==", value).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

// Update writes profile fields only; engagement records are mutated
// exclusively through the dedicated methods below.
func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	updateData := map[string]interface{}{
		"username":  user.Username,
		"phone":     user.Phone,
		"status":    user.Status,
		"updatedAt": time.Now(),
	}

	cleaned := make(map[string]interface{})
	for key, value := range updateData {
		if strVal, ok := value.(string); ok && strVal == "" {
			continue
		}
		cleaned[key] = value
	}

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, cleaned, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}
	return nil
}

// ToggleLike runs as one transaction on the user document: the membership
// read and the ArrayUnion/ArrayRemove write commit together, so two
// concurrent toggles for the same pair serialize instead of both
// appending.
func (r *firestoreUserRepository) ToggleLike(ctx context.Context, userID, productID string) (bool, error) {
	docRef := r.client.Collection("users").Doc(userID)

	var liked bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return err
		}

		if user.HasLiked(productID) {
			liked = false
			return tx.Update(docRef, []firestore.Update{
				{Path: "likedProducts", Value: firestore.ArrayRemove(productID)},
				{Path: "updatedAt", Value: time.Now()},
			})
		}

		liked = true
		return tx.Update(docRef, []firestore.Update{
			{Path: "likedProducts", Value: firestore.ArrayUnion(productID)},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if isNotFound(err) {
			return false, errors.NotFound("User", err)
		}
		return false, errors.Internal("Failed to toggle like", err)
	}

	return liked, nil
}

func (r *firestoreUserRepository) UpsertView(ctx context.Context, userID, productID string, at time.Time) error {
	docRef := r.client.Collection("users").Doc(userID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return err
		}

		user.RecordView(productID, at)
		return tx.Update(docRef, []firestore.Update{
			{Path: "viewedProducts", Value: user.ViewedProducts},
			{Path: "viewedProductIds", Value: firestore.ArrayUnion(productID)},
			{Path: "updatedAt", Value: at},
		})
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to record view", err)
	}

	return nil
}

func (r *firestoreUserRepository) UpsertReview(ctx context.Context, userID, productID string, rating int, comment string, at time.Time) error {
	docRef := r.client.Collection("users").Doc(userID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return err
		}

		user.UpsertReview(productID, rating, comment, at)
		return tx.Update(docRef, []firestore.Update{
			{Path: "reviews", Value: user.Reviews},
			{Path: "reviewedProductIds", Value: firestore.ArrayUnion(productID)},
			{Path: "updatedAt", Value: at},
		})
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to submit review", err)
	}

	return nil
}

func (r *firestoreUserRepository) CountLikes(ctx context.Context, productID string) (int64, error) {
	docs, err := r.client.Collection("users").
		Where("likedProducts", "array-contains", productID).
		Select().
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count likes", err)
	}

	return int64(len(docs)), nil
}

func (r *firestoreUserRepository) SumViews(ctx context.Context, productID string) (int64, error) {
	docs, err := r.client.Collection("users").
		Where("viewedProductIds", "array-contains", productID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to sum views", err)
	}

	var total int64
	for _, doc := range docs {
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			continue
		}
		for _, v := range user.ViewedProducts {
			if v.ProductID == productID {
				total += v.ViewCount
				break
			}
		}
	}

	return total, nil
}

func (r *firestoreUserRepository) RatingsFor(ctx context.Context, productID string) ([]int, error) {
	docs, err := r.client.Collection("users").
		Where("reviewedProductIds", "array-contains", productID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to collect ratings", err)
	}

	var ratings []int
	for _, doc := range docs {
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			continue
		}
		if review := user.ReviewFor(productID); review != nil {
			ratings = append(ratings, review.Rating)
		}
	}

	return ratings, nil
}
