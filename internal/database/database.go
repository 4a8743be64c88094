// Package database はデータベース接続とスキーマ初期化を提供します。
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	defaultSQLitePath = "todos.db"
)

// Driver は環境変数 DB_DRIVER からドライバー名を返します。
// 未設定の場合は SQLite (オリジナル構成) を使用します。
func Driver() string {
	if d := os.Getenv("DB_DRIVER"); d != "" {
		return d
	}
	return DriverSQLite
}

// GetDSN は選択されたドライバー用の接続文字列 (DSN) を構築します。
// main.go で godotenv.Load() が呼び出されるため、ここでは省略。
func GetDSN(driver string) string {
	switch driver {
	case DriverMySQL:
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		name := os.Getenv("DB_NAME")
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, name)
	default:
		if path := os.Getenv("DB_PATH"); path != "" {
			return path
		}
		return defaultSQLitePath
	}
}

// Open は指定されたドライバーとDSNでデータベース接続を開きます。
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not ping database: %w", err)
	}
	return db, nil
}

// InitDB は環境変数の設定からデータベース接続を初期化します。
// 接続かスキーマ初期化に失敗した場合はプロセスを終了します。
func InitDB() *sql.DB {
	driver := Driver()
	dsn := GetDSN(driver)

	db, err := Open(driver, dsn)
	if err != nil {
		log.Fatalf("Fatal: Failed to connect to database (%s): %v", driver, err)
	}
	if err := EnsureSchema(db, driver); err != nil {
		log.Fatalf("Fatal: Failed to ensure schema: %v", err)
	}
	log.Printf("Successfully connected to %s database!", driver)
	return db
}

// EnsureSchema は todos テーブルを冪等に作成します。
// 起動のたびに実行しても安全です (CREATE TABLE IF NOT EXISTS)。
func EnsureSchema(db *sql.DB, driver string) error {
	var ddl string
	switch driver {
	case DriverMySQL:
		ddl = `CREATE TABLE IF NOT EXISTS todos (
			id        INT          NOT NULL AUTO_INCREMENT,
			title     VARCHAR(255) NOT NULL,
			completed BOOLEAN      NOT NULL DEFAULT FALSE,
			created   DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id)
		)`
	default:
		// AUTOINCREMENT により削除済みIDの再利用を防ぎます。
		ddl = `CREATE TABLE IF NOT EXISTS todos (
			id        INTEGER  PRIMARY KEY AUTOINCREMENT,
			title     TEXT     NOT NULL,
			completed BOOLEAN  NOT NULL DEFAULT FALSE,
			created   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	}

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("could not create todos table: %w", err)
	}
	return nil
}
