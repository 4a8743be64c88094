// Package handlers はHTTPハンドラーを提供します。
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-todo-api/internal/models"
	"go-todo-api/internal/repositories"
	"go-todo-api/internal/services"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// parseID はパスパラメータ :id を正の整数として解析します。
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return id, true
}

// GetTodosHandler はすべてのTodoを新しい順で返します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	todos, err := h.todoService.GetTodos()
	if err != nil {
		log.Printf("Failed to fetch todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos from database"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodoByIDHandler は指定されたIDのTodoを返します。
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	foundTodo, err := h.todoService.GetTodoByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		log.Printf("Failed to fetch todo from database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todo from database"})
		return
	}
	c.JSON(http.StatusOK, foundTodo)
}

// CreateTodoHandler は新しいTodoを作成し、DBに保存します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	createdTodo, err := h.todoService.CreateTodo(req.Title)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}
		log.Printf("Failed to create todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save todo to database"})
		return
	}
	c.JSON(http.StatusCreated, createdTodo)
}

// UpdateTodoHandler は指定されたIDのTodoを部分更新します。
// ボディで省略されたフィールドは既存の値を保持します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	updatedTodo, err := h.todoService.UpdateTodo(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "title must not be empty"})
		case errors.Is(err, repositories.ErrTodoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		default:
			log.Printf("Failed to update todo in database: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo in database"})
		}
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler は指定されたIDのTodoを削除します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(id); err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		log.Printf("Failed to delete todo from database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo from database"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
