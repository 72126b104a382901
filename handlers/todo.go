package handlers

import (
	"errors"
	"net/http"

	todoRepo "eventhorizon/database/repository/todo"
	"eventhorizon/models"
	"eventhorizon/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TodoHandler serves the todo CRUD endpoints straight off the repository;
// the domain has no behavior beyond persistence.
type TodoHandler struct {
	Repo todoRepo.TodoRepository
}

// NewTodoHandler constructs a TodoHandler.
func NewTodoHandler(repo todoRepo.TodoRepository) *TodoHandler {
	return &TodoHandler{Repo: repo}
}

// GetTodos handles GET /get-todos with optional urgency/priority filters.
func (h *TodoHandler) GetTodos(c *gin.Context) {
	urgency := c.Query("urgency")
	priority := c.Query("priority")
	if !validLevel(urgency) || !validLevel(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "urgency and priority must be 'high' or 'low'"})
		return
	}

	todos, err := h.Repo.GetAll(c.Request.Context(), urgency, priority)
	if err != nil {
		utils.GetLogger().Error("failed to list todos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodoByID handles GET /get-todos/:id.
func (h *TodoHandler) GetTodoByID(c *gin.Context) {
	id := c.Param("id")
	todo, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		utils.GetLogger().Error("failed to get todo", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// AddTodo handles POST /add-todos.
func (h *TodoHandler) AddTodo(c *gin.Context) {
	var in models.TodoCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	todo, err := h.Repo.Create(c.Request.Context(), in)
	if err != nil {
		utils.GetLogger().Error("failed to create todo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// UpdateTodo handles PUT /update-todo/:id with a partial payload.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id := c.Param("id")
	var in models.TodoUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	todo, err := h.Repo.UpdateByID(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		utils.GetLogger().Error("failed to update todo", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodo handles DELETE /delete-todo/:id.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		utils.GetLogger().Error("failed to delete todo", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully", "deleted_id": id})
}

// DeleteTodoByTitle handles DELETE /delete-todo-by-title?title=....
// Deleting zero todos is a 404, matching the by-id semantics.
func (h *TodoHandler) DeleteTodoByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}
	count, err := h.Repo.DeleteByTitle(c.Request.Context(), title)
	if err != nil {
		utils.GetLogger().Error("failed to delete todos by title", zap.String("title", title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todos by title"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No todos found with the given title"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todos deleted successfully", "deleted_count": count})
}

func validLevel(v string) bool {
	return v == "" || v == "high" || v == "low"
}
