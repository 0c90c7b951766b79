// Package usecase はsurveyフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"survey_backend/internal/feature/survey/domain/entity"
)

// SurveyRepository はサーベイの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SurveyRepository interface {
	// Create は新しいサーベイを永続化します。
	Create(ctx context.Context, s *entity.Survey) error
	// FindAll は全サーベイを作成者・設問付きで取得します。
	FindAll(ctx context.Context) ([]entity.Survey, error)
	// FindByID はIDでサーベイを作成者・設問付きで取得します。
	FindByID(ctx context.Context, id uint) (*entity.Survey, error)
	// Update は変更済みフィールドを保存します。
	Update(ctx context.Context, s *entity.Survey) error
	// Delete はサーベイと配下の設問・回答・分析スナップショットを削除します。
	Delete(ctx context.Context, id uint) error
}

// SurveyUpdate はサーベイ更新の部分指定です。nilのフィールドは変更しません。
type SurveyUpdate struct {
	Title       *string
	Description *string
	IsActive    *bool
}

// surveyUsecase はサーベイCRUDのビジネスロジックを提供します。
type surveyUsecase struct {
	surveys SurveyRepository
}

// NewSurveyUsecase はsurveyUsecaseの新しいインスタンスを生成します。
func NewSurveyUsecase(surveys SurveyRepository) *surveyUsecase {
	return &surveyUsecase{surveys: surveys}
}

// CreateSurvey は新しいサーベイを作成します。作成直後はアクティブ状態です。
func (u *surveyUsecase) CreateSurvey(ctx context.Context, title, description string, createdBy uint) (*entity.Survey, error) {
	s := &entity.Survey{
		Title:       title,
		Description: description,
		CreatedBy:   createdBy,
		IsActive:    true,
	}
	if err := u.surveys.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListSurveys は全サーベイを返します。
func (u *surveyUsecase) ListSurveys(ctx context.Context) ([]entity.Survey, error) {
	return u.surveys.FindAll(ctx)
}

// GetSurvey はIDで単一サーベイを返します。
func (u *surveyUsecase) GetSurvey(ctx context.Context, id uint) (*entity.Survey, error) {
	return u.surveys.FindByID(ctx, id)
}

// UpdateSurvey は指定されたフィールドのみを更新して結果を返します。
func (u *surveyUsecase) UpdateSurvey(ctx context.Context, id uint, upd SurveyUpdate) (*entity.Survey, error) {
	s, err := u.surveys.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.IsActive != nil {
		s.IsActive = *upd.IsActive
	}
	if err := u.surveys.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteSurvey はサーベイを配下のデータごと削除します。
func (u *surveyUsecase) DeleteSurvey(ctx context.Context, id uint) error {
	return u.surveys.Delete(ctx, id)
}
