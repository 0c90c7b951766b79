package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"survey_backend/internal/feature/analytics/domain/entity"
	"survey_backend/internal/feature/analytics/usecase"
)

// snapshotGorm は分析スナップショットのSnapshotRepository実装です。
type snapshotGorm struct {
	db *gorm.DB
}

// snapshotGormがSnapshotRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SnapshotRepository = (*snapshotGorm)(nil)

// NewSnapshotGorm は指定されたDBでSnapshotRepositoryの新しいインスタンスを生成します。
func NewSnapshotGorm(db *gorm.DB) usecase.SnapshotRepository {
	return &snapshotGorm{db: db}
}

// Create はスナップショットを新規作成します。
func (r *snapshotGorm) Create(ctx context.Context, snapshot *entity.SurveyAnalytics) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

// FindAll は全スナップショットをID順で返します。
func (r *snapshotGorm) FindAll(ctx context.Context) ([]entity.SurveyAnalytics, error) {
	var snapshots []entity.SurveyAnalytics
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// FindByID はIDでスナップショットを1件取得します。
func (r *snapshotGorm) FindByID(ctx context.Context, id uint) (*entity.SurveyAnalytics, error) {
	var snapshot entity.SurveyAnalytics
	if err := r.db.WithContext(ctx).First(&snapshot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// FindBySurveyID はサーベイIDでスナップショットを1件取得します。
func (r *snapshotGorm) FindBySurveyID(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error) {
	var snapshot entity.SurveyAnalytics
	err := r.db.WithContext(ctx).Where("survey_id = ?", surveyID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// Upsert はsurvey_idをキーに全カラムを作成または上書きします。
func (r *snapshotGorm) Upsert(ctx context.Context, snapshot *entity.SurveyAnalytics) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "survey_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_responden", "total_pertanyaan",
			"total_setuju", "total_tidak_setuju",
			"setuju_percentage", "tidak_setuju_percentage",
			"gemini_summary", "gemini_insight", "generated_at",
			"updated_at",
		}),
	}).Create(snapshot).Error
}

// UpsertTallies は集計カラムのみ上書きし、ナラティブ列は保持します。
func (r *snapshotGorm) UpsertTallies(ctx context.Context, snapshot *entity.SurveyAnalytics) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "survey_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_responden", "total_pertanyaan",
			"total_setuju", "total_tidak_setuju",
			"setuju_percentage", "tidak_setuju_percentage",
			"updated_at",
		}),
	}).Create(snapshot).Error
}

// Update はスナップショットを丸ごと保存します。
func (r *snapshotGorm) Update(ctx context.Context, snapshot *entity.SurveyAnalytics) error {
	return r.db.WithContext(ctx).Save(snapshot).Error
}

// Delete はスナップショットを削除します。
func (r *snapshotGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.SurveyAnalytics{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSnapshotNotFound
	}
	return nil
}
