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

type firestoreCompanyRepository struct {
	client *firestore.Client
}

func NewFirestoreCompanyRepository(client *firestore.Client) repository.CompanyRepository {
	return &firestoreCompanyRepository{client: client}
}

func (r *firestoreCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	if company.ID == "" {
		company.ID = r.client.Collection("companies").NewDoc().ID
	}

	now := time.Now()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	company.UpdatedAt = now

	_, err := r.client.Collection("companies").Doc(company.ID).Set(ctx, company)
	if err != nil {
		return errors.Internal("Failed to create company", err)
	}
	return nil
}

func (r *firestoreCompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	doc, err := r.client.Collection("companies").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Company", err)
		}
		return nil, errors.Internal("Failed to get company", err)
	}

	var company entity.Company
	if err := doc.DataTo(&company); err != nil {
		return nil, errors.Internal("Failed to parse company data", err)
	}
	return &company, nil
}

func (r *firestoreCompanyRepository) GetBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	iter := r.client.Collection("companies").Where("slug", "==", slug).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Company", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query company", err)
	}

	var company entity.Company
	if err := doc.DataTo(&company); err != nil {
		return nil, errors.Internal("Failed to parse company data", err)
	}
	return &company, nil
}

func (r *firestoreCompanyRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Company, int64, error) {
	query := r.client.Collection("companies").Query
	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("name", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count companies", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var companies []*entity.Company
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate companies", err)
		}
		var company entity.Company
		if err := doc.DataTo(&company); err != nil {
			return nil, 0, errors.Internal("Failed to parse company data", err)
		}
		companies = append(companies, &company)
	}

	return companies, total, nil
}

func (r *firestoreCompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	company.UpdatedAt = time.Now()

	_, err := r.client.Collection("companies").Doc(company.ID).Set(ctx, company)
	if err != nil {
		return errors.Internal("Failed to update company", err)
	}
	return nil
}

func (r *firestoreCompanyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("companies").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete company", err)
	}
	return nil
}
