package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ytakahashi/todo-web/internal/handlers"
	"github.com/ytakahashi/todo-web/internal/services"
	"github.com/ytakahashi/todo-web/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbPath := os.Getenv("TODO_DB_PATH")
	if dbPath == "" {
		dbPath = "todos.db"
	}

	store, err := services.NewTodoStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open todo store: %v", err)
	}
	defer store.Close()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Renderer = renderer

	todoHandler := handlers.NewTodoHandler(store)
	todoHandler.Register(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := e.Start(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
