package usecase

import "errors"

var (
	// ErrSurveyNotFound は対象のサーベイが存在しない場合に返されます。
	ErrSurveyNotFound = errors.New("survey not found")
	// ErrSnapshotNotFound は分析スナップショットが存在しない場合に返されます。
	ErrSnapshotNotFound = errors.New("analytics snapshot not found")
	// ErrSnapshotExists は同一サーベイのスナップショットが既に存在する場合に返されます。
	ErrSnapshotExists = errors.New("analytics already exists for this survey")
	// ErrEmptyNarrative はモデルが空のレスポンスを返した場合に返されます。
	ErrEmptyNarrative = errors.New("narrative model returned empty response")
)
