package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "todos_test.db")
	db, err := Open(DriverSQLite, dbPath)
	require.NoError(t, err)
	defer db.Close()

	// 起動のたびに呼ばれるため、複数回実行してもエラーにならないこと
	require.NoError(t, EnsureSchema(db, DriverSQLite))
	require.NoError(t, EnsureSchema(db, DriverSQLite))

	_, err = db.Exec("INSERT INTO todos (title) VALUES (?)", "schema check")
	require.NoError(t, err)

	// デフォルト値がテーブル定義で設定されること
	var completed bool
	var created string
	err = db.QueryRow("SELECT completed, created FROM todos WHERE title = ?", "schema check").Scan(&completed, &created)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.NotEmpty(t, created)
}

func TestGetDSN_SQLiteDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "")

	assert.Equal(t, "todos.db", GetDSN(DriverSQLite))

	t.Setenv("DB_PATH", "/tmp/custom.db")
	assert.Equal(t, "/tmp/custom.db", GetDSN(DriverSQLite))
}

func TestGetDSN_MySQL(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "todos")

	assert.Equal(t, "app:secret@tcp(db:3306)/todos?parseTime=true", GetDSN(DriverMySQL))
}

func TestDriver_DefaultsToSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	assert.Equal(t, DriverSQLite, Driver())

	t.Setenv("DB_DRIVER", "mysql")
	assert.Equal(t, DriverMySQL, Driver())
}
