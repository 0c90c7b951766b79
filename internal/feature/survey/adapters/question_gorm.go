package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"survey_backend/internal/feature/survey/domain/entity"
	"survey_backend/internal/feature/survey/usecase"
)

// questionGorm はQuestionRepositoryインターフェースのGORM実装です。
type questionGorm struct {
	db *gorm.DB
}

var _ usecase.QuestionRepository = (*questionGorm)(nil)

// NewQuestionGorm は指定されたgorm.DB接続でquestionGormの新しいインスタンスを生成します。
func NewQuestionGorm(db *gorm.DB) *questionGorm {
	return &questionGorm{db: db}
}

// Create は設問をデータベースに追加します。
func (r *questionGorm) Create(ctx context.Context, q *entity.Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// FindAllBySurvey はサーベイ配下の設問を表示順で取得します。
func (r *questionGorm) FindAllBySurvey(ctx context.Context, surveyID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Order(questionOrder).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// FindByID はIDで設問を取得します。
func (r *questionGorm) FindByID(ctx context.Context, id uint) (*entity.Question, error) {
	var q entity.Question
	if err := r.db.WithContext(ctx).First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

// Update は設問の変更を保存します。
func (r *questionGorm) Update(ctx context.Context, q *entity.Question) error {
	return r.db.WithContext(ctx).Save(q).Error
}

// Delete は設問と紐づく回答を1トランザクションで削除します。
func (r *questionGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q entity.Question
		if err := tx.First(&q, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrQuestionNotFound
			}
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&entity.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&q).Error
	})
}
