// Package services はビジネスロジックを扱うサービス層を提供します。
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-todo-api/internal/models"
	"go-todo-api/internal/repositories"
)

var (
	createTodoCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoapp_todos_created_total",
			Help: "Total number of CreateTodo operations",
		},
		[]string{"status"},
	)

	updateTodoCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoapp_todos_updated_total",
			Help: "Total number of UpdateTodo operations",
		},
		[]string{"status"},
	)

	deleteTodoCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoapp_todos_deleted_total",
			Help: "Total number of DeleteTodo operations",
		},
		[]string{"status"},
	)

	createTodoDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "todoapp_create_todo_duration_seconds",
			Help:    "Duration of CreateTodo operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ErrEmptyTitle はタイトルが空、または空白のみの場合のエラーです。
var ErrEmptyTitle = errors.New("title must not be empty")

// TodoService はTodo関連のビジネスロジックを扱います。
type TodoService struct {
	todoRepo *repositories.TodoRepository
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo *repositories.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// CreateTodo はタイトルから新しいTodoを作成します。
// タイトルは前後の空白を除去し、空になった場合は ErrEmptyTitle を返します。
func (s *TodoService) CreateTodo(title string) (*models.Todo, error) {
	startTime := time.Now()
	defer func() {
		createTodoDuration.Observe(time.Since(startTime).Seconds())
	}()

	title = strings.TrimSpace(title)
	if title == "" {
		createTodoCount.WithLabelValues("error").Inc()
		return nil, ErrEmptyTitle
	}

	created, err := s.todoRepo.Create(title)
	if err != nil {
		createTodoCount.WithLabelValues("error").Inc()
		return nil, err
	}
	createTodoCount.WithLabelValues("success").Inc()
	return created, nil
}

// GetTodos はすべてのTodoを新しい順で取得します。
func (s *TodoService) GetTodos() ([]*models.Todo, error) {
	return s.todoRepo.FindAll()
}

// GetTodoByID は指定されたIDのTodoを取得します。
func (s *TodoService) GetTodoByID(id int) (*models.Todo, error) {
	return s.todoRepo.FindByID(id)
}

// UpdateTodo は指定されたIDのTodoを部分更新します。
// title が指定されている場合は空白を除去し、空なら ErrEmptyTitle を返します。
func (s *TodoService) UpdateTodo(id int, req *models.UpdateTodoRequest) (*models.Todo, error) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			updateTodoCount.WithLabelValues("error").Inc()
			return nil, ErrEmptyTitle
		}
		req.Title = &trimmed
	}

	updated, err := s.todoRepo.Update(id, req)
	if err != nil {
		updateTodoCount.WithLabelValues("error").Inc()
		return nil, err
	}
	updateTodoCount.WithLabelValues("success").Inc()
	return updated, nil
}

// DeleteTodo は指定されたIDのTodoを削除します。
func (s *TodoService) DeleteTodo(id int) error {
	if err := s.todoRepo.Delete(id); err != nil {
		deleteTodoCount.WithLabelValues("error").Inc()
		return err
	}
	deleteTodoCount.WithLabelValues("success").Inc()
	return nil
}
