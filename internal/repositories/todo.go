// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"go-todo-api/internal/models"
)

// ErrTodoNotFound はTODOが見つからない場合のエラーです。
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository はデータベース操作を行うための構造体です。
type TodoRepository struct {
	DB *sql.DB
}

// NewTodoRepository は新しいTodoRepositoryインスタンスを作成します。
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{DB: db}
}

// Create は新しいTodoタスクをデータベースに挿入します。
// completed と created はテーブルのデフォルト値に任せ、
// 挿入後に行を再取得してストアが採番したIDと作成日時を返します。
func (r *TodoRepository) Create(title string) (*models.Todo, error) {
	query := "INSERT INTO todos (title) VALUES (?)"

	result, err := r.DB.Exec(query, title)
	if err != nil {
		log.Printf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	return r.FindByID(int(id))
}

// FindAll はすべてのTodoタスクを作成日時の降順 (新しい順) で取得します。
func (r *TodoRepository) FindAll() ([]*models.Todo, error) {
	query := "SELECT id, title, completed, created FROM todos ORDER BY created DESC, id DESC"

	rows, err := r.DB.Query(query)
	if err != nil {
		log.Printf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.Created); err != nil {
			log.Printf("Failed to scan todo: %v", err)
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		todos = append(todos, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// FindByID は指定されたIDのTodoタスクを取得します。
func (r *TodoRepository) FindByID(id int) (*models.Todo, error) {
	query := "SELECT id, title, completed, created FROM todos WHERE id = ?"

	var t models.Todo
	err := r.DB.QueryRow(query, id).Scan(&t.ID, &t.Title, &t.Completed, &t.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Failed to query todo by ID: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}

	return &t, nil
}

// Update は指定されたIDのTodoタスクを部分更新します。
// リクエストで省略されたフィールドは既存の値を保持します。
// created は不変のため更新対象に含めません。
func (r *TodoRepository) Update(id int, req *models.UpdateTodoRequest) (*models.Todo, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	title := existing.Title
	if req.Title != nil {
		title = *req.Title
	}
	completed := existing.Completed
	if req.Completed != nil {
		completed = *req.Completed
	}

	query := "UPDATE todos SET title = ?, completed = ? WHERE id = ?"
	if _, err := r.DB.Exec(query, title, completed, id); err != nil {
		log.Printf("Failed to update todo: %v", err)
		return nil, fmt.Errorf("could not update todo: %w", err)
	}

	// 更新されたTODOを取得して返す
	return r.FindByID(id)
}

// Delete は指定されたIDのTodoタスクを削除します。
func (r *TodoRepository) Delete(id int) error {
	query := "DELETE FROM todos WHERE id = ?"

	result, err := r.DB.Exec(query, id)
	if err != nil {
		log.Printf("Failed to delete todo: %v", err)
		return fmt.Errorf("could not delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
