// Package modelsはTodoを定義します。
package models

import (
	"time"
)

// Todo は todos テーブルの1行を表します。
type Todo struct {
	ID        int       `json:"id"`        // 主キー (ストアが自動採番)
	Title     string    `json:"title"`     // タスクのタイトル（必須）
	Completed bool      `json:"completed"` // 完了状態
	Created   time.Time `json:"created"`   // 作成日時 (INSERT時に一度だけ設定、以後不変)
}

// CreateTodoRequest は POST /todos のリクエストボディです。
// completed と created はクライアントから指定できません。
type CreateTodoRequest struct {
	Title string `json:"title" binding:"required"` // 必須。空白のみはサービス層で拒否
}

// UpdateTodoRequest は PUT /todos/{id} のリクエストボディです。
// ポインタにすることで「フィールド省略」と「ゼロ値」を区別します。
// 省略されたフィールドは既存の値を保持します。
type UpdateTodoRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}
