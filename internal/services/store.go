package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ytakahashi/todo-web/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Todo = models.Todo

// ErrTodoNotFound is returned when the given id matches no record.
var ErrTodoNotFound = errors.New("todo not found")

type TodoStore struct {
	db *gorm.DB
}

// NewTodoStore opens (and migrates) the sqlite database at path.
// Use ":memory:" for an ephemeral store.
func NewTodoStore(path string) (*TodoStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Todo{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &TodoStore{
		db: db,
	}, nil
}

func (s *TodoStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateTodo persists a new todo. The resolved flag is always false on
// creation regardless of what the caller's input carried.
func (s *TodoStore) CreateTodo(ctx context.Context, title string, description *string, dueDate *time.Time) (*models.Todo, error) {
	todo := &models.Todo{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		IsResolved:  false,
		CreatedAt:   time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(todo).Error; err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// ListTodos returns every todo ordered by creation time, oldest first.
func (s *TodoStore) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	var todos []*models.Todo
	err := s.db.WithContext(ctx).
		Order("created_at asc").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

func (s *TodoStore) GetTodo(ctx context.Context, id string) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.WithContext(ctx).First(&todo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return &todo, nil
}

// UpdateTodo overwrites every mutable field of the identified todo.
func (s *TodoStore) UpdateTodo(ctx context.Context, id, title string, description *string, dueDate *time.Time, isResolved bool) (*models.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	todo.Title = title
	todo.Description = description
	todo.DueDate = dueDate
	todo.IsResolved = isResolved

	if err := s.db.WithContext(ctx).Save(todo).Error; err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// ToggleResolved flips the resolved flag of the identified todo.
func (s *TodoStore) ToggleResolved(ctx context.Context, id string) (*models.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	todo.IsResolved = !todo.IsResolved

	err = s.db.WithContext(ctx).
		Model(todo).
		Update("is_resolved", todo.IsResolved).Error
	if err != nil {
		return nil, fmt.Errorf("failed to toggle todo: %w", err)
	}

	return todo, nil
}

func (s *TodoStore) DeleteTodo(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Todo{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete todo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
