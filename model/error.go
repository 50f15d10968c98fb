// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import "errors"

// センチネルエラー
var (
	// 入力ファイルが存在しない場合
	ErrInputNotFound = errors.New("no input file")
	// 入力ファイルが読み込めない場合
	ErrInputUnreadable = errors.New("issue reading input file")
	// 集計に必要なイベント数が足りない場合
	ErrInsufficientData = errors.New("insufficient data")
)

// ValidationError はバリデーションエラーを表す型
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError はValidationErrorを生成するヘルパー関数
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
