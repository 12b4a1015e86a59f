package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic_backend/internal/feature/feedback/domain/entity"
	"clinic_backend/internal/feature/feedback/usecase"
)

type mockFeedbackRepository struct {
	CreateFunc func(ctx context.Context, f *entity.Feedback) error
	ListFunc   func(ctx context.Context) ([]entity.Feedback, error)
}

func (m *mockFeedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return nil
}

func (m *mockFeedbackRepository) List(ctx context.Context) ([]entity.Feedback, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func TestFeedbackUsecase_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    usecase.SubmitInput
		wantName string
	}{
		{name: "named", input: usecase.SubmitInput{Name: "Ann", Rating: 5, Comment: "great"}, wantName: "Ann"},
		{name: "empty name defaults to Anonymous", input: usecase.SubmitInput{Rating: 4, Comment: "ok"}, wantName: "Anonymous"},
		{name: "blank name defaults to Anonymous", input: usecase.SubmitInput{Name: "   ", Rating: 3, Comment: "meh"}, wantName: "Anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stored *entity.Feedback
			uc := usecase.NewFeedbackUsecase(&mockFeedbackRepository{
				CreateFunc: func(ctx context.Context, f *entity.Feedback) error {
					stored = f
					return nil
				},
			})

			f, err := uc.Submit(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Same(t, stored, f)
			assert.Equal(t, tt.wantName, f.Name)
			assert.Equal(t, tt.input.Rating, f.Rating)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("insert failed")
		uc := usecase.NewFeedbackUsecase(&mockFeedbackRepository{
			CreateFunc: func(ctx context.Context, f *entity.Feedback) error { return repoErr },
		})

		_, err := uc.Submit(context.Background(), usecase.SubmitInput{Rating: 5, Comment: "x"})

		assert.ErrorIs(t, err, repoErr)
	})
}
