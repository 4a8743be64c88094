package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler はシンプルなヘルスチェックエンドポイントです。
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheckHandler はデータベース接続の健全性を確認します。
func DBCheckHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Printf("DB Ping failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Database connection failed",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	}
}
