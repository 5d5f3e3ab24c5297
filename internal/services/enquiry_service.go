// Package services contains thin application services between the HTTP
// surface and storage.
package services

import (
	"context"

	"github.com/Uchencho/Bar-Zubi/internal/models"
)

// EnquiryStore is the enquiry storage contract consumed by the service.
// Implemented by repo.EnquiryRepo; tests substitute an in-memory fake.
type EnquiryStore interface {
	Create(ctx context.Context, username, question string) (*models.Enquiry, error)
	ListByUsername(ctx context.Context, username string) ([]models.Enquiry, error)
	Get(ctx context.Context, username string, id int64) (*models.Enquiry, error)
	Update(ctx context.Context, username string, id int64, question string) (*models.Enquiry, error)
	Delete(ctx context.Context, username string, id int64) (bool, error)
}

type EnquiryService struct {
	enquiries EnquiryStore
}

func NewEnquiryService(enquiries EnquiryStore) *EnquiryService {
	return &EnquiryService{enquiries: enquiries}
}

func (s *EnquiryService) Create(ctx context.Context, username, question string) (*models.Enquiry, error) {
	return s.enquiries.Create(ctx, username, question)
}

func (s *EnquiryService) List(ctx context.Context, username string) ([]models.Enquiry, error) {
	return s.enquiries.ListByUsername(ctx, username)
}

func (s *EnquiryService) Get(ctx context.Context, username string, id int64) (*models.Enquiry, error) {
	return s.enquiries.Get(ctx, username, id)
}

func (s *EnquiryService) Update(ctx context.Context, username string, id int64, question string) (*models.Enquiry, error) {
	return s.enquiries.Update(ctx, username, id, question)
}

func (s *EnquiryService) Delete(ctx context.Context, username string, id int64) (bool, error) {
	return s.enquiries.Delete(ctx, username, id)
}
