package usecase

import (
	"context"

	"survey_backend/internal/feature/survey/domain/entity"
)

// QuestionRepository は設問の永続化層を抽象化します。
type QuestionRepository interface {
	Create(ctx context.Context, q *entity.Question) error
	FindAllBySurvey(ctx context.Context, surveyID uint) ([]entity.Question, error)
	FindByID(ctx context.Context, id uint) (*entity.Question, error)
	Update(ctx context.Context, q *entity.Question) error
	// Delete は設問とそれに紐づく回答を削除します。
	Delete(ctx context.Context, id uint) error
}

// questionUsecase は設問CRUDのビジネスロジックを提供します。
type questionUsecase struct {
	questions QuestionRepository
	surveys   SurveyRepository
}

// NewQuestionUsecase はquestionUsecaseの新しいインスタンスを生成します。
func NewQuestionUsecase(questions QuestionRepository, surveys SurveyRepository) *questionUsecase {
	return &questionUsecase{questions: questions, surveys: surveys}
}

// CreateQuestion は親サーベイの存在を確認した上で設問を追加します。
func (u *questionUsecase) CreateQuestion(ctx context.Context, surveyID uint, text string, order int) (*entity.Question, error) {
	if _, err := u.surveys.FindByID(ctx, surveyID); err != nil {
		return nil, err
	}
	q := &entity.Question{
		SurveyID:     surveyID,
		QuestionText: text,
		Order:        order,
	}
	if err := u.questions.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// ListQuestions はサーベイの設問を表示順で返します。
func (u *questionUsecase) ListQuestions(ctx context.Context, surveyID uint) ([]entity.Question, error) {
	if _, err := u.surveys.FindByID(ctx, surveyID); err != nil {
		return nil, err
	}
	return u.questions.FindAllBySurvey(ctx, surveyID)
}

// GetQuestion はIDで単一設問を返します。
func (u *questionUsecase) GetQuestion(ctx context.Context, id uint) (*entity.Question, error) {
	return u.questions.FindByID(ctx, id)
}

// UpdateQuestion は設問文と表示順を更新します。
func (u *questionUsecase) UpdateQuestion(ctx context.Context, id uint, text *string, order *int) (*entity.Question, error) {
	q, err := u.questions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if text != nil {
		q.QuestionText = *text
	}
	if order != nil {
		q.Order = *order
	}
	if err := u.questions.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// DeleteQuestion は設問を紐づく回答ごと削除します。
func (u *questionUsecase) DeleteQuestion(ctx context.Context, id uint) error {
	return u.questions.Delete(ctx, id)
}
