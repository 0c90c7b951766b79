package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"survey_backend/internal/feature/survey/domain/entity"
)

// mockSurveyRepo is a mock implementation of the SurveyRepository interface.
type mockSurveyRepo struct {
	CreateFunc   func(ctx context.Context, s *entity.Survey) error
	FindAllFunc  func(ctx context.Context) ([]entity.Survey, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Survey, error)
	UpdateFunc   func(ctx context.Context, s *entity.Survey) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockSurveyRepo) Create(ctx context.Context, s *entity.Survey) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	s.ID = 1
	return nil
}

func (m *mockSurveyRepo) FindAll(ctx context.Context) ([]entity.Survey, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSurveyRepo) FindByID(ctx context.Context, id uint) (*entity.Survey, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrSurveyNotFound
}

func (m *mockSurveyRepo) Update(ctx context.Context, s *entity.Survey) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSurveyRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func TestSurveyUsecase_CreateSurvey(t *testing.T) {
	ctx := context.Background()

	t.Run("new surveys start active", func(t *testing.T) {
		uc := NewSurveyUsecase(&mockSurveyRepo{})

		s, err := uc.CreateSurvey(ctx, "Survei Kepuasan", "desc", 1)

		assert.NoError(t, err)
		assert.True(t, s.IsActive)
		assert.Equal(t, uint(1), s.CreatedBy)
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		wantErr := errors.New("db down")
		uc := NewSurveyUsecase(&mockSurveyRepo{
			CreateFunc: func(ctx context.Context, s *entity.Survey) error {
				return wantErr
			},
		})

		_, err := uc.CreateSurvey(ctx, "Survei", "", 1)

		assert.ErrorIs(t, err, wantErr)
	})
}

func TestSurveyUsecase_UpdateSurvey(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the provided fields", func(t *testing.T) {
		uc := NewSurveyUsecase(&mockSurveyRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Survey, error) {
				return &entity.Survey{ID: id, Title: "Lama", Description: "desc", IsActive: true}, nil
			},
		})

		inactive := false
		s, err := uc.UpdateSurvey(ctx, 1, SurveyUpdate{IsActive: &inactive})

		assert.NoError(t, err)
		assert.False(t, s.IsActive)
		assert.Equal(t, "Lama", s.Title)
		assert.Equal(t, "desc", s.Description)
	})

	t.Run("missing survey returns ErrSurveyNotFound", func(t *testing.T) {
		uc := NewSurveyUsecase(&mockSurveyRepo{})

		_, err := uc.UpdateSurvey(ctx, 99, SurveyUpdate{})

		assert.ErrorIs(t, err, ErrSurveyNotFound)
	})
}
