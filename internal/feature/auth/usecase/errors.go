package usecase

import "errors"

var (
	// ErrEmailAlreadyExists は登録済みメールアドレスで再登録しようとした場合に返されます。
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrUserNotFound は該当ユーザーが存在しない場合に返されます。
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials は認証情報が誤っている場合に返されます。
	ErrInvalidCredentials = errors.New("invalid email or password")
)
