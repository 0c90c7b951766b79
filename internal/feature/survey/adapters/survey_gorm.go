// Package adapters はsurveyフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	analyticsentity "survey_backend/internal/feature/analytics/domain/entity"
	"survey_backend/internal/feature/survey/domain/entity"
	"survey_backend/internal/feature/survey/usecase"
)

// questionOrder は設問の作成順（表示順→ID）の並びです。
// "order" はSQLの予約語のため引用符が必要です。
const questionOrder = `"order" ASC, id ASC`

// surveyGorm はSurveyRepositoryインターフェースのGORM実装です。
type surveyGorm struct {
	db *gorm.DB
}

// surveyGormがSurveyRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SurveyRepository = (*surveyGorm)(nil)

// NewSurveyGorm は指定されたgorm.DB接続でsurveyGormの新しいインスタンスを生成します。
func NewSurveyGorm(db *gorm.DB) *surveyGorm {
	return &surveyGorm{db: db}
}

// Create はサーベイをデータベースに追加します。
func (r *surveyGorm) Create(ctx context.Context, s *entity.Survey) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// FindAll は全サーベイを作成者・設問付きで取得します。
func (r *surveyGorm) FindAll(ctx context.Context) ([]entity.Survey, error) {
	var surveys []entity.Survey
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(questionOrder)
		}).
		Order("id ASC").
		Find(&surveys).Error
	if err != nil {
		return nil, err
	}
	return surveys, nil
}

// FindByID はIDでサーベイを作成者・設問付きで取得します。
func (r *surveyGorm) FindByID(ctx context.Context, id uint) (*entity.Survey, error) {
	var s entity.Survey
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(questionOrder)
		}).
		First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSurveyNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Update はサーベイの変更を保存します。
func (r *surveyGorm) Update(ctx context.Context, s *entity.Survey) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete はサーベイと配下のデータを1トランザクションで削除します。
// 削除順は外部キーの依存方向に合わせて 回答→回答セッション→設問→分析スナップショット→サーベイ です。
func (r *surveyGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s entity.Survey
		if err := tx.First(&s, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrSurveyNotFound
			}
			return err
		}

		// 回答セッションに紐づく個別回答
		if err := tx.Where("response_id IN (?)",
			tx.Model(&entity.Response{}).Select("id").Where("survey_id = ?", id),
		).Delete(&entity.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&entity.Response{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&entity.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&analyticsentity.SurveyAnalytics{}).Error; err != nil {
			return err
		}
		return tx.Delete(&s).Error
	})
}
