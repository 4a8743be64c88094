// Package testutil はテスト用のセットアップヘルパーを提供します。
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-todo-api/internal/database"
	"go-todo-api/internal/repositories"
	"go-todo-api/internal/routes"
)

// SetupTestDB はテスト用のSQLiteデータベースを一時ディレクトリに作成し、
// スキーマを初期化してルーターとリポジトリを返します。
// 一時ディレクトリはテスト終了時に自動で削除されます。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *repositories.TodoRepository) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "todos_test.db")
	db, err := database.Open(database.DriverSQLite, dbPath)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { db.Close() })

	err = database.EnsureSchema(db, database.DriverSQLite)
	require.NoError(t, err, "Failed to ensure test schema")

	r := routes.SetupRouter(db)
	todoRepo := repositories.NewTodoRepository(db)

	return db, r, todoRepo
}
