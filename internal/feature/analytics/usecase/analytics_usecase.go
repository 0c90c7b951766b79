// Package usecase implements the analytics pipeline: tallying boolean
// answers, building the analysis prompt, calling the narrative model and
// parsing its output into a structured result.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"survey_backend/internal/feature/analytics/domain/entity"
	surveyentity "survey_backend/internal/feature/survey/domain/entity"
)

// 外部呼び出しが失敗した場合にレスポンスへ埋め込む既定文。
const (
	ClientFailureSummary = "Unable to generate analysis at this time."
	ClientFailureInsight = "Please try again later."
)

// SurveyReader はサーベイと回答データの読み取り口です。
type SurveyReader interface {
	FindSurvey(ctx context.Context, id uint) (*surveyentity.Survey, error)
	ListResponses(ctx context.Context, surveyID uint) ([]surveyentity.Response, error)
	ListAnswers(ctx context.Context, surveyID uint) ([]surveyentity.Answer, error)
}

// SnapshotRepository は分析スナップショットの永続化層です。
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.SurveyAnalytics) error
	FindAll(ctx context.Context) ([]entity.SurveyAnalytics, error)
	FindByID(ctx context.Context, id uint) (*entity.SurveyAnalytics, error)
	FindBySurveyID(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error)
	// Upsert はsurvey_idをキーに全カラムを作成または上書きします。
	Upsert(ctx context.Context, snapshot *entity.SurveyAnalytics) error
	// UpsertTallies は集計カラムのみを上書きし、ナラティブ列は保持します。
	UpsertTallies(ctx context.Context, snapshot *entity.SurveyAnalytics) error
	Update(ctx context.Context, snapshot *entity.SurveyAnalytics) error
	Delete(ctx context.Context, id uint) error
}

// NarrativeGenerator は生成モデルへの1回の問い合わせを抽象化します。
type NarrativeGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AnalyticsReport は GET /surveys/:id/analytics のレスポンスの元データです。
type AnalyticsReport struct {
	Survey    *surveyentity.Survey
	Tally     entity.SurveyTallyReport
	Narrative *entity.NarrativeResult
}

// AnalyticsUsecase は分析パイプライン全体を組み立てます。
type AnalyticsUsecase struct {
	surveys   SurveyReader
	snapshots SnapshotRepository
	narrative NarrativeGenerator
}

// NewAnalyticsUsecase はAnalyticsUsecaseの新しいインスタンスを生成します。
func NewAnalyticsUsecase(surveys SurveyReader, snapshots SnapshotRepository, narrative NarrativeGenerator) *AnalyticsUsecase {
	return &AnalyticsUsecase{surveys: surveys, snapshots: snapshots, narrative: narrative}
}

// loadTally はサーベイ一式を読み込み集計レポートを作ります。
func (u *AnalyticsUsecase) loadTally(ctx context.Context, surveyID uint) (*surveyentity.Survey, entity.SurveyTallyReport, error) {
	survey, err := u.surveys.FindSurvey(ctx, surveyID)
	if err != nil {
		return nil, entity.SurveyTallyReport{}, err
	}
	responses, err := u.surveys.ListResponses(ctx, surveyID)
	if err != nil {
		return nil, entity.SurveyTallyReport{}, err
	}
	answers, err := u.surveys.ListAnswers(ctx, surveyID)
	if err != nil {
		return nil, entity.SurveyTallyReport{}, err
	}
	return survey, BuildTallyReport(survey, responses, answers), nil
}

// AnalyzeSurvey はプロンプト生成から解析までを1回実行します。
// モデル呼び出しの失敗は既定文へ縮退させるため、エラーは返しません。
func (u *AnalyticsUsecase) AnalyzeSurvey(ctx context.Context, report entity.SurveyTallyReport) entity.NarrativeResult {
	prompt := BuildSurveyPrompt(report)

	raw, err := u.narrative.GenerateContent(ctx, prompt)
	if err != nil {
		slog.Error("narrative generation failed", "error", err, "survey_id", report.SurveyID)
		return entity.NarrativeResult{
			Summary: ClientFailureSummary,
			Insight: ClientFailureInsight,
		}
	}

	return ParseNarrative(raw)
}

// GetAnalytics はリアルタイム集計とナラティブ分析をまとめて返します。
// 回答者が0人の場合は外部呼び出しを行わず、ナラティブはnilのままです。
// 結果はスナップショットとして survey_id 単位でupsertされます。
func (u *AnalyticsUsecase) GetAnalytics(ctx context.Context, surveyID uint) (*AnalyticsReport, error) {
	survey, tally, err := u.loadTally(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	report := &AnalyticsReport{Survey: survey, Tally: tally}

	if tally.TotalResponden > 0 {
		narrative := u.AnalyzeSurvey(ctx, tally)
		report.Narrative = &narrative
	}

	snapshot := snapshotFromTally(tally)
	if report.Narrative != nil {
		now := time.Now()
		snapshot.GeminiSummary = &report.Narrative.Summary
		snapshot.GeminiInsight = &report.Narrative.Insight
		snapshot.GeneratedAt = &now
	}
	if err := u.snapshots.Upsert(ctx, snapshot); err != nil {
		// スナップショットはキャッシュなので保存失敗でレスポンスは落とさない
		slog.Error("failed to upsert analytics snapshot", "error", err, "survey_id", surveyID)
	}

	return report, nil
}

// GenerateSnapshot は集計のみのスナップショットを作成または更新して返します。
// ナラティブ列には触れません。
func (u *AnalyticsUsecase) GenerateSnapshot(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error) {
	_, tally, err := u.loadTally(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	snapshot := snapshotFromTally(tally)
	if err := u.snapshots.UpsertTallies(ctx, snapshot); err != nil {
		return nil, err
	}

	return u.snapshots.FindBySurveyID(ctx, surveyID)
}

// CreateSnapshot は POST /survey-analytics のための明示的な作成処理です。
// 同一サーベイのスナップショットが既に存在する場合は ErrSnapshotExists を返します。
func (u *AnalyticsUsecase) CreateSnapshot(ctx context.Context, snapshot *entity.SurveyAnalytics) (*entity.SurveyAnalytics, error) {
	if _, err := u.surveys.FindSurvey(ctx, snapshot.SurveyID); err != nil {
		return nil, err
	}
	if _, err := u.snapshots.FindBySurveyID(ctx, snapshot.SurveyID); err == nil {
		return nil, ErrSnapshotExists
	}
	if err := u.snapshots.Create(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ListSnapshots は全スナップショットを返します。
func (u *AnalyticsUsecase) ListSnapshots(ctx context.Context) ([]entity.SurveyAnalytics, error) {
	return u.snapshots.FindAll(ctx)
}

// GetSnapshot はIDでスナップショットを1件返します。
func (u *AnalyticsUsecase) GetSnapshot(ctx context.Context, id uint) (*entity.SurveyAnalytics, error) {
	return u.snapshots.FindByID(ctx, id)
}

// SnapshotUpdate は部分更新の入力です。nilのフィールドは変更しません。
type SnapshotUpdate struct {
	TotalResponden        *int
	TotalPertanyaan       *int
	TotalSetuju           *int
	TotalTidakSetuju      *int
	SetujuPercentage      *float64
	TidakSetujuPercentage *float64
	GeminiSummary         *string
	GeminiInsight         *string
	GeneratedAt           *time.Time
}

// UpdateSnapshot はスナップショットを部分更新します。
func (u *AnalyticsUsecase) UpdateSnapshot(ctx context.Context, id uint, upd SnapshotUpdate) (*entity.SurveyAnalytics, error) {
	snapshot, err := u.snapshots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.TotalResponden != nil {
		snapshot.TotalResponden = *upd.TotalResponden
	}
	if upd.TotalPertanyaan != nil {
		snapshot.TotalPertanyaan = *upd.TotalPertanyaan
	}
	if upd.TotalSetuju != nil {
		snapshot.TotalSetuju = *upd.TotalSetuju
	}
	if upd.TotalTidakSetuju != nil {
		snapshot.TotalTidakSetuju = *upd.TotalTidakSetuju
	}
	if upd.SetujuPercentage != nil {
		snapshot.SetujuPercentage = *upd.SetujuPercentage
	}
	if upd.TidakSetujuPercentage != nil {
		snapshot.TidakSetujuPercentage = *upd.TidakSetujuPercentage
	}
	if upd.GeminiSummary != nil {
		snapshot.GeminiSummary = upd.GeminiSummary
	}
	if upd.GeminiInsight != nil {
		snapshot.GeminiInsight = upd.GeminiInsight
	}
	if upd.GeneratedAt != nil {
		snapshot.GeneratedAt = upd.GeneratedAt
	}

	if err := u.snapshots.Update(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// DeleteSnapshot はスナップショットを削除します。
func (u *AnalyticsUsecase) DeleteSnapshot(ctx context.Context, id uint) error {
	return u.snapshots.Delete(ctx, id)
}

// TestGenerate は疎通確認用にプロンプトをそのままモデルへ送ります。
func (u *AnalyticsUsecase) TestGenerate(ctx context.Context, prompt string) (string, error) {
	raw, err := u.narrative.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", ErrEmptyNarrative
	}
	return raw, nil
}

// snapshotFromTally は集計レポートをスナップショット行へ写します。
func snapshotFromTally(tally entity.SurveyTallyReport) *entity.SurveyAnalytics {
	return &entity.SurveyAnalytics{
		SurveyID:              tally.SurveyID,
		TotalResponden:        tally.TotalResponden,
		TotalPertanyaan:       tally.TotalPertanyaan,
		TotalSetuju:           tally.TotalSetuju,
		TotalTidakSetuju:      tally.TotalTidakSetuju,
		SetujuPercentage:      tally.SetujuPercentage,
		TidakSetujuPercentage: tally.TidakSetujuPercentage,
	}
}
