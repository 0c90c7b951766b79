// Package adapters provides GORM-backed implementations of the analytics
// usecase interfaces.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"survey_backend/internal/feature/analytics/usecase"
	surveyentity "survey_backend/internal/feature/survey/domain/entity"
)

// 設問の表示順。order は予約語なのでクォートする。
const questionOrder = "\"order\" ASC, id ASC"

// surveySourceGorm は集計元データを読み出すSurveyReader実装です。
type surveySourceGorm struct {
	db *gorm.DB
}

// surveySourceGormがSurveyReaderを実装していることをコンパイル時に検証します。
var _ usecase.SurveyReader = (*surveySourceGorm)(nil)

// NewSurveySourceGorm は指定されたDBでSurveyReaderの新しいインスタンスを生成します。
func NewSurveySourceGorm(db *gorm.DB) usecase.SurveyReader {
	return &surveySourceGorm{db: db}
}

// FindSurvey はサーベイを設問込みで1件取得します。
func (r *surveySourceGorm) FindSurvey(ctx context.Context, id uint) (*surveyentity.Survey, error) {
	var survey surveyentity.Survey
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(questionOrder)
		}).
		First(&survey, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSurveyNotFound
		}
		return nil, err
	}
	return &survey, nil
}

// ListResponses はサーベイに属する回答提出を全件返します。
func (r *surveySourceGorm) ListResponses(ctx context.Context, surveyID uint) ([]surveyentity.Response, error) {
	var responses []surveyentity.Response
	err := r.db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// ListAnswers はサーベイに属する個別回答を全件返します。
func (r *surveySourceGorm) ListAnswers(ctx context.Context, surveyID uint) ([]surveyentity.Answer, error) {
	var answers []surveyentity.Answer
	err := r.db.WithContext(ctx).
		Where("response_id IN (?)",
			r.db.Model(&surveyentity.Response{}).Select("id").Where("survey_id = ?", surveyID)).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
