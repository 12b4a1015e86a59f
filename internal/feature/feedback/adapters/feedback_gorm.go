// Package adapters はfeedbackフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"clinic_backend/internal/feature/feedback/domain/entity"
	"clinic_backend/internal/feature/feedback/usecase"
)

var _ usecase.FeedbackRepository = (*feedbackRepository)(nil)

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository はfeedbackRepositoryの新しいインスタンスを生成します。
func NewFeedbackRepository(db *gorm.DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// List は全フィードバックを新しい順に返します。
func (r *feedbackRepository) List(ctx context.Context) ([]entity.Feedback, error) {
	out := make([]entity.Feedback, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
