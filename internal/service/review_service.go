package service

import (
	"context"
	"fmt"

	"bistro_backend/internal/model"
	"bistro_backend/internal/repository"
)

// ReviewService provides read access to testimonials.
type ReviewService interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
