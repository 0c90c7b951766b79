package usecase

import "errors"

var (
	// ErrSurveyNotFound は該当サーベイが存在しない場合に返されます。
	ErrSurveyNotFound = errors.New("survey not found")
	// ErrQuestionNotFound は該当設問が存在しない場合に返されます。
	ErrQuestionNotFound = errors.New("question not found")
	// ErrResponseNotFound は該当回答セッションが存在しない場合に返されます。
	ErrResponseNotFound = errors.New("response not found")
	// ErrAnswerNotFound は該当回答が存在しない場合に返されます。
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrSurveyInactive は非アクティブなサーベイへの回答送信時に返されます。
	ErrSurveyInactive = errors.New("survey is not active")
)
