package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ytakahashi/todo-web/internal/forms"
	"github.com/ytakahashi/todo-web/internal/models"
	"github.com/ytakahashi/todo-web/internal/services"
	"github.com/ytakahashi/todo-web/internal/web"
)

type TodoHandler struct {
	store *services.TodoStore
}

func NewTodoHandler(store *services.TodoStore) *TodoHandler {
	return &TodoHandler{
		store: store,
	}
}

// Register wires every route onto the echo instance.
func (h *TodoHandler) Register(e *echo.Echo) {
	e.GET("/", h.List)
	e.GET("/create/", h.NewTodo)
	e.POST("/create/", h.CreateTodo)
	e.GET("/:id/update/", h.EditTodo)
	e.POST("/:id/update/", h.UpdateTodo)
	e.GET("/:id/delete/", h.ConfirmDelete)
	e.POST("/:id/delete/", h.DeleteTodo)
	// GET kept for compatibility with the original route table; the
	// rendered list submits the POST form.
	e.GET("/:id/toggle/", h.ToggleResolved)
	e.POST("/:id/toggle/", h.ToggleResolved)
	e.GET("/static/app.css", web.CSS)
}

type listPage struct {
	Todos                []*models.Todo
	Total                int
	Resolved             int
	CompletionPercentage int
}

type formPage struct {
	Heading string
	Form    *forms.TodoForm
	IsEdit  bool
}

type deletePage struct {
	Todo *models.Todo
}

// List renders every todo oldest-first with completion stats.
func (h *TodoHandler) List(c echo.Context) error {
	todos, err := h.store.ListTodos(c.Request().Context())
	if err != nil {
		return err
	}

	resolved := 0
	for _, todo := range todos {
		if todo.IsResolved {
			resolved++
		}
	}

	page := listPage{
		Todos:    todos,
		Total:    len(todos),
		Resolved: resolved,
	}
	if page.Total > 0 {
		page.CompletionPercentage = resolved * 100 / page.Total
	}

	return c.Render(http.StatusOK, "todo_list.html", page)
}

// NewTodo renders the empty create form. The resolved flag has no field
// on this form.
func (h *TodoHandler) NewTodo(c echo.Context) error {
	return c.Render(http.StatusOK, "todo_form.html", formPage{
		Heading: "New todo",
		Form:    forms.ParseTodo(nil, false),
	})
}

// CreateTodo validates the submission and persists a new todo. Whatever
// the request carried for is_resolved is ignored; new todos are always
// unresolved.
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	form := forms.ParseTodo(values, false)
	if !form.Validate() {
		return c.Render(http.StatusOK, "todo_form.html", formPage{
			Heading: "New todo",
			Form:    form,
		})
	}

	_, err = h.store.CreateTodo(c.Request().Context(), form.TitleValue(), form.DescriptionValue(), form.DueDateValue())
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

// EditTodo renders the update form pre-filled from the record.
func (h *TodoHandler) EditTodo(c echo.Context) error {
	todo, err := h.loadTodo(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "todo_form.html", formPage{
		Heading: "Edit todo",
		Form:    forms.FromTodo(todo),
		IsEdit:  true,
	})
}

// UpdateTodo validates the submission and overwrites the record's fields.
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	todo, err := h.loadTodo(c)
	if err != nil {
		return err
	}

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	form := forms.ParseTodo(values, true)
	if !form.Validate() {
		return c.Render(http.StatusOK, "todo_form.html", formPage{
			Heading: "Edit todo",
			Form:    form,
			IsEdit:  true,
		})
	}

	_, err = h.store.UpdateTodo(c.Request().Context(), todo.ID, form.TitleValue(), form.DescriptionValue(), form.DueDateValue(), form.IsResolved)
	if err != nil {
		return h.storeError(err)
	}

	return c.Redirect(http.StatusFound, "/")
}

// ConfirmDelete renders the confirmation page for the record.
func (h *TodoHandler) ConfirmDelete(c echo.Context) error {
	todo, err := h.loadTodo(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "todo_confirm_delete.html", deletePage{Todo: todo})
}

// DeleteTodo removes the record permanently.
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	err := h.store.DeleteTodo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.storeError(err)
	}

	return c.Redirect(http.StatusFound, "/")
}

// ToggleResolved flips the resolved flag and returns to the list.
func (h *TodoHandler) ToggleResolved(c echo.Context) error {
	_, err := h.store.ToggleResolved(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.storeError(err)
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *TodoHandler) loadTodo(c echo.Context) (*models.Todo, error) {
	todo, err := h.store.GetTodo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return nil, h.storeError(err)
	}
	return todo, nil
}

func (h *TodoHandler) storeError(err error) error {
	if errors.Is(err, services.ErrTodoNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "todo not found")
	}
	return err
}
