// Package usecase implements feedback submission and listing.
package usecase

import (
	"context"
	"strings"

	"clinic_backend/internal/feature/feedback/domain/entity"
)

// FeedbackRepository abstracts the persistence layer for feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, f *entity.Feedback) error
	List(ctx context.Context) ([]entity.Feedback, error)
}

// SubmitInput is a validated feedback submission.
type SubmitInput struct {
	Name     string
	DoctorID string
	Rating   int
	Comment  string
}

// FeedbackUsecase provides business logic for feedback.
type FeedbackUsecase struct {
	repo FeedbackRepository
}

// NewFeedbackUsecase creates a new FeedbackUsecase.
func NewFeedbackUsecase(repo FeedbackRepository) *FeedbackUsecase {
	return &FeedbackUsecase{repo: repo}
}

// Submit stores feedback. A blank name is recorded as "Anonymous".
func (u *FeedbackUsecase) Submit(ctx context.Context, in SubmitInput) (*entity.Feedback, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = entity.AnonymousName
	}
	f := &entity.Feedback{
		Name:     name,
		DoctorID: strings.TrimSpace(in.DoctorID),
		Rating:   in.Rating,
		Comment:  strings.TrimSpace(in.Comment),
	}
	if err := u.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// List returns all feedback, newest first.
func (u *FeedbackUsecase) List(ctx context.Context) ([]entity.Feedback, error) {
	return u.repo.List(ctx)
}
