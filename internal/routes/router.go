// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-todo-api/internal/handlers"
	"go-todo-api/internal/repositories"
	"go-todo-api/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB) *gin.Engine {
	r := gin.Default()

	// CORS対策 (フロントエンドはブラウザから直接アクセスする)
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{origin}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	r.Use(MetricsMiddleware())

	// リポジトリ
	todoRepo := repositories.NewTodoRepository(db)

	// サービス
	todoService := services.NewTodoService(todoRepo)

	// ハンドラー
	todoHandler := handlers.NewTodoHandler(todoService)

	// ルーティング
	r.GET("/healthz", handlers.HealthHandler)
	r.GET("/dbcheck", handlers.DBCheckHandler(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/todos", todoHandler.GetTodosHandler)
	r.GET("/todos/:id", todoHandler.GetTodoByIDHandler)
	r.POST("/todos", todoHandler.CreateTodoHandler)
	r.PUT("/todos/:id", todoHandler.UpdateTodoHandler)
	r.DELETE("/todos/:id", todoHandler.DeleteTodoHandler)

	return r
}
