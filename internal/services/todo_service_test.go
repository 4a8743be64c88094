package services

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo-api/internal/database"
	"go-todo-api/internal/models"
	"go-todo-api/internal/repositories"
)

// newTestService はテスト用のSQLite DBに接続したサービスを返します。
// testutil パッケージはルーター経由でこのパッケージに依存するため、ここでは直接組み立てます。
func newTestService(t *testing.T) *TodoService {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "todos_test.db")
	db, err := database.Open(database.DriverSQLite, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.EnsureSchema(db, database.DriverSQLite))

	return NewTodoService(repositories.NewTodoRepository(db))
}

func TestCreateTodo_TrimsWhitespace(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateTodo("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
}

func TestCreateTodo_EmptyTitle(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateTodo("")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.CreateTodo("   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestUpdateTodo_BlankTitleRejected(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateTodo("original")
	require.NoError(t, err)

	blank := "  "
	_, err = svc.UpdateTodo(created.ID, &models.UpdateTodoRequest{Title: &blank})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	// 失敗した更新は何も変更しない
	unchanged, err := svc.GetTodoByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", unchanged.Title)
}

func TestCreateTodo_Metrics(t *testing.T) {
	svc := newTestService(t)

	// メトリクスはグローバルなので増分で検証する
	successBefore := testutil.ToFloat64(createTodoCount.WithLabelValues("success"))
	errorBefore := testutil.ToFloat64(createTodoCount.WithLabelValues("error"))

	_, err := svc.CreateTodo("valid")
	require.NoError(t, err)

	_, err = svc.CreateTodo("")
	require.Error(t, err)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(createTodoCount.WithLabelValues("success")))
	assert.Equal(t, errorBefore+1, testutil.ToFloat64(createTodoCount.WithLabelValues("error")))
}

func TestDeleteTodo_Metrics(t *testing.T) {
	svc := newTestService(t)

	successBefore := testutil.ToFloat64(deleteTodoCount.WithLabelValues("success"))
	errorBefore := testutil.ToFloat64(deleteTodoCount.WithLabelValues("error"))

	created, err := svc.CreateTodo("to delete")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTodo(created.ID))
	require.Error(t, svc.DeleteTodo(created.ID))

	assert.Equal(t, successBefore+1, testutil.ToFloat64(deleteTodoCount.WithLabelValues("success")))
	assert.Equal(t, errorBefore+1, testutil.ToFloat64(deleteTodoCount.WithLabelValues("error")))
}
