package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-todo-api/internal/database"
	"go-todo-api/internal/routes"
)

func main() {
	// .env はローカル開発用。存在しなくてもエラーにしない (コンテナ環境では環境変数を直接渡す)。
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := database.InitDB()
	defer db.Close()

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server listening on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
