package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"survey_backend/internal/feature/survey/domain/entity"
	"survey_backend/internal/feature/survey/usecase"
)

// responseGorm はResponseRepositoryインターフェースのGORM実装です。
type responseGorm struct {
	db *gorm.DB
}

var _ usecase.ResponseRepository = (*responseGorm)(nil)

// NewResponseGorm は指定されたgorm.DB接続でresponseGormの新しいインスタンスを生成します。
func NewResponseGorm(db *gorm.DB) *responseGorm {
	return &responseGorm{db: db}
}

// Create は回答セッションをデータベースに追加します。
func (r *responseGorm) Create(ctx context.Context, res *entity.Response) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// FindAll は全回答セッションを個別回答付きで取得します。
func (r *responseGorm) FindAll(ctx context.Context) ([]entity.Response, error) {
	var responses []entity.Response
	if err := r.db.WithContext(ctx).Preload("Answers").Order("id ASC").Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

// FindByID はIDで回答セッションを個別回答付きで取得します。
func (r *responseGorm) FindByID(ctx context.Context, id uint) (*entity.Response, error) {
	var res entity.Response
	if err := r.db.WithContext(ctx).Preload("Answers").First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrResponseNotFound
		}
		return nil, err
	}
	return &res, nil
}

// Delete は回答セッションと配下の個別回答を1トランザクションで削除します。
func (r *responseGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var res entity.Response
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrResponseNotFound
			}
			return err
		}
		if err := tx.Where("response_id = ?", id).Delete(&entity.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&res).Error
	})
}

// answerGorm はAnswerRepositoryインターフェースのGORM実装です。
type answerGorm struct {
	db *gorm.DB
}

var _ usecase.AnswerRepository = (*answerGorm)(nil)

// NewAnswerGorm は指定されたgorm.DB接続でanswerGormの新しいインスタンスを生成します。
func NewAnswerGorm(db *gorm.DB) *answerGorm {
	return &answerGorm{db: db}
}

// Create は個別回答をデータベースに追加します。
func (r *answerGorm) Create(ctx context.Context, a *entity.Answer) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindAllByResponse は回答セッション配下の個別回答を取得します。
func (r *answerGorm) FindAllByResponse(ctx context.Context, responseID uint) ([]entity.Answer, error) {
	var answers []entity.Answer
	err := r.db.WithContext(ctx).
		Where("response_id = ?", responseID).
		Order("id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// Delete は個別回答を削除します。
func (r *answerGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Answer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAnswerNotFound
	}
	return nil
}
