package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"survey_backend/internal/feature/analytics/domain/entity"
	"survey_backend/internal/feature/analytics/usecase"
)

// mockSnapshotRepository はテスト用のSnapshotRepositoryモック実装です。
type mockSnapshotRepository struct {
	createFn         func(ctx context.Context, snapshot *entity.SurveyAnalytics) error
	findBySurveyIDFn func(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error)
	findByIDFn       func(ctx context.Context, id uint) (*entity.SurveyAnalytics, error)
	upsertFn         func(ctx context.Context, snapshot *entity.SurveyAnalytics) error
	deleteFn         func(ctx context.Context, id uint) error
}

func (m *mockSnapshotRepository) Create(ctx context.Context, s *entity.SurveyAnalytics) error {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return nil
}

func (m *mockSnapshotRepository) FindAll(ctx context.Context) ([]entity.SurveyAnalytics, error) {
	return nil, nil
}

func (m *mockSnapshotRepository) FindByID(ctx context.Context, id uint) (*entity.SurveyAnalytics, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, usecase.ErrSnapshotNotFound
}

func (m *mockSnapshotRepository) FindBySurveyID(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error) {
	if m.findBySurveyIDFn != nil {
		return m.findBySurveyIDFn(ctx, surveyID)
	}
	return nil, usecase.ErrSnapshotNotFound
}

func (m *mockSnapshotRepository) Upsert(ctx context.Context, s *entity.SurveyAnalytics) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, s)
	}
	return nil
}

func (m *mockSnapshotRepository) UpsertTallies(ctx context.Context, s *entity.SurveyAnalytics) error {
	return nil
}

func (m *mockSnapshotRepository) Update(ctx context.Context, s *entity.SurveyAnalytics) error {
	return nil
}

func (m *mockSnapshotRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// TestNewCachingSnapshotRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingSnapshotRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingSnapshotRepository(nil, 0, &mockSnapshotRepository{}, "")

	if repo.ttl != 5*time.Minute {
		t.Errorf("expected TTL %v, got %v", 5*time.Minute, repo.ttl)
	}
	if repo.namespace != "analytics" {
		t.Errorf("expected namespace %q, got %q", "analytics", repo.namespace)
	}
}

// TestCachingSnapshotRepository_FindBySurveyID_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingSnapshotRepository_FindBySurveyID_NilRedis(t *testing.T) {
	t.Parallel()

	want := &entity.SurveyAnalytics{ID: 1, SurveyID: 7, TotalResponden: 3}
	inner := &mockSnapshotRepository{
		findBySurveyIDFn: func(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error) {
			return want, nil
		},
	}
	repo := NewCachingSnapshotRepository(nil, time.Minute, inner, "")

	got, err := repo.FindBySurveyID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalResponden != want.TotalResponden {
		t.Errorf("expected %d respondents, got %d", want.TotalResponden, got.TotalResponden)
	}
}

// TestCachingSnapshotRepository_FindBySurveyID_CacheHit はキャッシュヒット時にDBへ行かないことを検証します。
func TestCachingSnapshotRepository_FindBySurveyID_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	cached := entity.SurveyAnalytics{ID: 1, SurveyID: 7, TotalResponden: 3}
	b, _ := json.Marshal(&cached)
	mock.ExpectGet("analytics:survey:7").SetVal(string(b))

	inner := &mockSnapshotRepository{
		findBySurveyIDFn: func(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error) {
			t.Fatal("inner repository should not be called on cache hit")
			return nil, nil
		},
	}
	repo := NewCachingSnapshotRepository(rdb, time.Minute, inner, "")

	got, err := repo.FindBySurveyID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalResponden != 3 {
		t.Errorf("expected 3 respondents, got %d", got.TotalResponden)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}

// TestCachingSnapshotRepository_FindBySurveyID_CacheMiss はキャッシュミス時にDBへフォールバックし結果を保存することを検証します。
func TestCachingSnapshotRepository_FindBySurveyID_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	want := &entity.SurveyAnalytics{ID: 1, SurveyID: 7, TotalResponden: 3}
	b, _ := json.Marshal(want)

	mock.ExpectGet("analytics:survey:7").RedisNil()
	mock.ExpectSet("analytics:survey:7", b, time.Minute).SetVal("OK")

	inner := &mockSnapshotRepository{
		findBySurveyIDFn: func(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error) {
			return want, nil
		},
	}
	repo := NewCachingSnapshotRepository(rdb, time.Minute, inner, "")

	got, err := repo.FindBySurveyID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SurveyID != 7 {
		t.Errorf("expected survey id 7, got %d", got.SurveyID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}

// TestCachingSnapshotRepository_Upsert_Invalidates はUpsert後にキャッシュが無効化されることを検証します。
func TestCachingSnapshotRepository_Upsert_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("analytics:survey:7").SetVal(1)

	repo := NewCachingSnapshotRepository(rdb, time.Minute, &mockSnapshotRepository{}, "")

	if err := repo.Upsert(context.Background(), &entity.SurveyAnalytics{SurveyID: 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}

// TestCachingSnapshotRepository_Upsert_InnerError は内部リポジトリの失敗時にキャッシュ無効化を行わないことを検証します。
func TestCachingSnapshotRepository_Upsert_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	wantErr := errors.New("db down")
	inner := &mockSnapshotRepository{
		upsertFn: func(ctx context.Context, s *entity.SurveyAnalytics) error {
			return wantErr
		},
	}
	repo := NewCachingSnapshotRepository(rdb, time.Minute, inner, "")

	if err := repo.Upsert(context.Background(), &entity.SurveyAnalytics{SurveyID: 7}); !errors.Is(err, wantErr) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}

// TestCachingSnapshotRepository_Delete_Invalidates はDelete時に対象サーベイのキャッシュが消えることを検証します。
func TestCachingSnapshotRepository_Delete_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("analytics:survey:7").SetVal(1)

	inner := &mockSnapshotRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.SurveyAnalytics, error) {
			return &entity.SurveyAnalytics{ID: id, SurveyID: 7}, nil
		},
	}
	repo := NewCachingSnapshotRepository(rdb, time.Minute, inner, "")

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}
