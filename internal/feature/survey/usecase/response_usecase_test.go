package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"survey_backend/internal/feature/survey/domain/entity"
)

// mockResponseRepo is a mock implementation of the ResponseRepository interface.
type mockResponseRepo struct {
	CreateFunc   func(ctx context.Context, r *entity.Response) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Response, error)
}

func (m *mockResponseRepo) Create(ctx context.Context, r *entity.Response) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	r.ID = 1
	return nil
}

func (m *mockResponseRepo) FindAll(ctx context.Context) ([]entity.Response, error) {
	return nil, nil
}

func (m *mockResponseRepo) FindByID(ctx context.Context, id uint) (*entity.Response, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrResponseNotFound
}

func (m *mockResponseRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

// mockAnswerRepo is a mock implementation of the AnswerRepository interface.
type mockAnswerRepo struct {
	CreateFunc func(ctx context.Context, a *entity.Answer) error
}

func (m *mockAnswerRepo) Create(ctx context.Context, a *entity.Answer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	a.ID = 1
	return nil
}

func (m *mockAnswerRepo) FindAllByResponse(ctx context.Context, responseID uint) ([]entity.Answer, error) {
	return nil, nil
}

func (m *mockAnswerRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

// mockQuestionRepo is a mock implementation of the QuestionRepository interface.
type mockQuestionRepo struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Question, error)
}

func (m *mockQuestionRepo) Create(ctx context.Context, q *entity.Question) error {
	return nil
}

func (m *mockQuestionRepo) FindAllBySurvey(ctx context.Context, surveyID uint) ([]entity.Question, error) {
	return nil, nil
}

func (m *mockQuestionRepo) FindByID(ctx context.Context, id uint) (*entity.Question, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrQuestionNotFound
}

func (m *mockQuestionRepo) Update(ctx context.Context, q *entity.Question) error {
	return nil
}

func (m *mockQuestionRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

func TestResponseUsecase_CreateResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("records submission time for active surveys", func(t *testing.T) {
		uc := NewResponseUsecase(&mockResponseRepo{}, &mockAnswerRepo{}, &mockSurveyRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Survey, error) {
				return &entity.Survey{ID: id, IsActive: true}, nil
			},
		}, &mockQuestionRepo{})

		before := time.Now()
		r, err := uc.CreateResponse(ctx, 1, 2)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), r.SurveyID)
		assert.Equal(t, uint(2), r.UserID)
		assert.False(t, r.SubmittedAt.Before(before))
	})

	t.Run("inactive survey is rejected", func(t *testing.T) {
		uc := NewResponseUsecase(&mockResponseRepo{}, &mockAnswerRepo{}, &mockSurveyRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Survey, error) {
				return &entity.Survey{ID: id, IsActive: false}, nil
			},
		}, &mockQuestionRepo{})

		_, err := uc.CreateResponse(ctx, 1, 2)

		assert.ErrorIs(t, err, ErrSurveyInactive)
	})

	t.Run("missing survey returns ErrSurveyNotFound", func(t *testing.T) {
		uc := NewResponseUsecase(&mockResponseRepo{}, &mockAnswerRepo{}, &mockSurveyRepo{}, &mockQuestionRepo{})

		_, err := uc.CreateResponse(ctx, 99, 2)

		assert.ErrorIs(t, err, ErrSurveyNotFound)
	})
}

func TestResponseUsecase_CreateAnswer(t *testing.T) {
	ctx := context.Background()

	newUsecase := func(responses *mockResponseRepo, questions *mockQuestionRepo) *responseUsecase {
		return NewResponseUsecase(responses, &mockAnswerRepo{}, &mockSurveyRepo{}, questions)
	}

	t.Run("false answers are stored as valid disagreement", func(t *testing.T) {
		uc := newUsecase(&mockResponseRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Response, error) {
				return &entity.Response{ID: id}, nil
			},
		}, &mockQuestionRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Question, error) {
				return &entity.Question{ID: id}, nil
			},
		})

		a, err := uc.CreateAnswer(ctx, 1, 10, false)

		assert.NoError(t, err)
		assert.False(t, a.Answer)
	})

	t.Run("unknown response is rejected", func(t *testing.T) {
		uc := newUsecase(&mockResponseRepo{}, &mockQuestionRepo{})

		_, err := uc.CreateAnswer(ctx, 99, 10, true)

		assert.ErrorIs(t, err, ErrResponseNotFound)
	})

	t.Run("unknown question is rejected", func(t *testing.T) {
		uc := newUsecase(&mockResponseRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Response, error) {
				return &entity.Response{ID: id}, nil
			},
		}, &mockQuestionRepo{})

		_, err := uc.CreateAnswer(ctx, 1, 99, true)

		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}
