package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tasklite/internal/domain"
	"tasklite/internal/dto"
	"tasklite/internal/service"
	"tasklite/internal/store"

	"github.com/gin-gonic/gin"
)

// TodoHandler wires the HTTP surface to the todo operations. Every
// request reloads the collection from the store; mutating routes run the
// full load→mutate→save cycle inside store.Update and answer with a
// redirect back to the list page.
type TodoHandler struct {
	svc   *service.TodoService
	store store.TodoStore
}

func NewTodoHandler(svc *service.TodoService, st store.TodoStore) *TodoHandler {
	return &TodoHandler{svc: svc, store: st}
}

// Index godoc
// @Summary      Render the todo list
// @Tags         pages
// @Produce      html
// @Param        filter  query  string  false  "View: all, active, completed or deleted (anything else shows all)"
// @Success      200  {string}  string  "HTML page"
// @Router       / [get]
func (h *TodoHandler) Index(c *gin.Context) {
	items, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filter := c.DefaultQuery("filter", "all")
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Filter": filter,
		"Counts": h.svc.CountViews(items),
		"Todos":  dto.NewTodoViews(h.svc.FilterView(items, domain.View(filter))),
	})
}

// Add godoc
// @Summary      Create a todo from the add form
// @Tags         todos
// @Accept       x-www-form-urlencoded
// @Param        text  formData  string  false  "Todo text; blank is silently ignored"
// @Success      302  {string}  string  "Redirect to /"
// @Failure      500  {object}  map[string]string
// @Router       /add [post]
func (h *TodoHandler) Add(c *gin.Context) {
	text := strings.TrimSpace(c.PostForm("text"))
	if text != "" {
		err := h.store.Update(c.Request.Context(), func(items []domain.Todo) []domain.Todo {
			return h.svc.Add(items, text)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.Redirect(http.StatusFound, "/")
}

// Toggle godoc
// @Summary      Flip a todo between done and not done
// @Tags         todos
// @Param        id  path  int  true  "Todo id"
// @Success      302  {string}  string  "Redirect to /"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /toggle/{id} [post]
func (h *TodoHandler) Toggle(c *gin.Context) {
	h.mutateByID(c, h.svc.Toggle)
}

// Delete godoc
// @Summary      Move a todo to the trash
// @Tags         todos
// @Param        id  path  int  true  "Todo id"
// @Success      302  {string}  string  "Redirect to /"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /delete/{id} [post]
func (h *TodoHandler) Delete(c *gin.Context) {
	h.mutateByID(c, h.svc.SoftDelete)
}

// Restore godoc
// @Summary      Bring a todo back from the trash
// @Tags         todos
// @Param        id  path  int  true  "Todo id"
// @Success      302  {string}  string  "Redirect to /"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /restore/{id} [post]
func (h *TodoHandler) Restore(c *gin.Context) {
	h.mutateByID(c, h.svc.Restore)
}

// ClearCompleted godoc
// @Summary      Permanently remove all completed todos
// @Tags         todos
// @Success      302  {string}  string  "Redirect to /"
// @Failure      500  {object}  map[string]string
// @Router       /clear/completed [post]
func (h *TodoHandler) ClearCompleted(c *gin.Context) {
	h.purge(c, h.svc.PurgeCompleted)
}

// ClearDeleted godoc
// @Summary      Permanently empty the trash
// @Tags         todos
// @Success      302  {string}  string  "Redirect to /"
// @Failure      500  {object}  map[string]string
// @Router       /clear/deleted [post]
func (h *TodoHandler) ClearDeleted(c *gin.Context) {
	h.purge(c, h.svc.PurgeDeleted)
}

// APIList godoc
// @Summary      List every record in every state
// @Tags         todos
// @Produce      json
// @Success      200  {array}  domain.Todo
// @Failure      500  {object}  map[string]string
// @Router       /api/todos [get]
func (h *TodoHandler) APIList(c *gin.Context) {
	items, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *TodoHandler) mutateByID(c *gin.Context, op func([]domain.Todo, int) []domain.Todo) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	err := h.store.Update(c.Request.Context(), func(items []domain.Todo) []domain.Todo {
		return op(items, id)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *TodoHandler) purge(c *gin.Context, op func([]domain.Todo) []domain.Todo) {
	err := h.store.Update(c.Request.Context(), op)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// parseID reads the :id path parameter. Anything that is not an integer
// gets a 400 here; integers that match no record fall through to the
// service layer's silent no-op.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
