package usecase

import (
	"context"
	"time"

	"survey_backend/internal/feature/survey/domain/entity"
)

// ResponseRepository は回答セッションの永続化層を抽象化します。
type ResponseRepository interface {
	Create(ctx context.Context, r *entity.Response) error
	FindAll(ctx context.Context) ([]entity.Response, error)
	FindByID(ctx context.Context, id uint) (*entity.Response, error)
	// Delete は回答セッションと配下の個別回答を削除します。
	Delete(ctx context.Context, id uint) error
}

// AnswerRepository は個別回答の永続化層を抽象化します。
type AnswerRepository interface {
	Create(ctx context.Context, a *entity.Answer) error
	FindAllByResponse(ctx context.Context, responseID uint) ([]entity.Answer, error)
	Delete(ctx context.Context, id uint) error
}

// responseUsecase は回答セッションと個別回答のビジネスロジックを提供します。
type responseUsecase struct {
	responses ResponseRepository
	answers   AnswerRepository
	surveys   SurveyRepository
	questions QuestionRepository
}

// NewResponseUsecase はresponseUsecaseの新しいインスタンスを生成します。
func NewResponseUsecase(responses ResponseRepository, answers AnswerRepository,
	surveys SurveyRepository, questions QuestionRepository) *responseUsecase {
	return &responseUsecase{
		responses: responses,
		answers:   answers,
		surveys:   surveys,
		questions: questions,
	}
}

// CreateResponse は回答セッションを開始します。
// 非アクティブなサーベイには回答できません。
func (u *responseUsecase) CreateResponse(ctx context.Context, surveyID, userID uint) (*entity.Response, error) {
	s, err := u.surveys.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if !s.IsActive {
		return nil, ErrSurveyInactive
	}
	r := &entity.Response{
		SurveyID:    surveyID,
		UserID:      userID,
		SubmittedAt: time.Now(),
	}
	if err := u.responses.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListResponses は全回答セッションを返します。
func (u *responseUsecase) ListResponses(ctx context.Context) ([]entity.Response, error) {
	return u.responses.FindAll(ctx)
}

// GetResponse はIDで単一回答セッションを返します。
func (u *responseUsecase) GetResponse(ctx context.Context, id uint) (*entity.Response, error) {
	return u.responses.FindByID(ctx, id)
}

// DeleteResponse は回答セッションを配下の回答ごと削除します。
func (u *responseUsecase) DeleteResponse(ctx context.Context, id uint) error {
	return u.responses.Delete(ctx, id)
}

// CreateAnswer は回答セッションと設問の存在を確認した上で個別回答を記録します。
func (u *responseUsecase) CreateAnswer(ctx context.Context, responseID, questionID uint, answer bool) (*entity.Answer, error) {
	if _, err := u.responses.FindByID(ctx, responseID); err != nil {
		return nil, err
	}
	if _, err := u.questions.FindByID(ctx, questionID); err != nil {
		return nil, err
	}
	a := &entity.Answer{
		ResponseID: responseID,
		QuestionID: questionID,
		Answer:     answer,
	}
	if err := u.answers.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAnswers は回答セッション配下の個別回答を返します。
func (u *responseUsecase) ListAnswers(ctx context.Context, responseID uint) ([]entity.Answer, error) {
	if _, err := u.responses.FindByID(ctx, responseID); err != nil {
		return nil, err
	}
	return u.answers.FindAllByResponse(ctx, responseID)
}

// DeleteAnswer は個別回答を削除します。
func (u *responseUsecase) DeleteAnswer(ctx context.Context, id uint) error {
	return u.answers.Delete(ctx, id)
}
