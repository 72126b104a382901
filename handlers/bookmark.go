package handlers

import (
	"errors"
	"net/http"

	bookmarkRepo "eventhorizon/database/repository/bookmark"
	"eventhorizon/models"
	"eventhorizon/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookmarkHandler serves the bookmarked-event endpoints off the repository.
type BookmarkHandler struct {
	Repo bookmarkRepo.BookmarkRepository
}

// NewBookmarkHandler constructs a BookmarkHandler.
func NewBookmarkHandler(repo bookmarkRepo.BookmarkRepository) *BookmarkHandler {
	return &BookmarkHandler{Repo: repo}
}

// GetBookmarkEvents handles GET /get-bookmark-events with an optional date
// filter.
func (h *BookmarkHandler) GetBookmarkEvents(c *gin.Context) {
	date := c.Query("date")

	var (
		events []models.BookmarkedEvent
		err    error
	)
	if date != "" {
		events, err = h.Repo.GetByDate(c.Request.Context(), date)
	} else {
		events, err = h.Repo.GetAll(c.Request.Context())
	}
	if err != nil {
		utils.GetLogger().Error("failed to list bookmarked events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookmarked events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetBookmarkEventByID handles GET /get-bookmark-event/:id.
func (h *BookmarkHandler) GetBookmarkEventByID(c *gin.Context) {
	id := c.Param("id")
	event, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bookmarked event not found"})
			return
		}
		utils.GetLogger().Error("failed to get bookmarked event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookmarked event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// AddBookmarkEvent handles POST /add-bookmark-event.
func (h *BookmarkHandler) AddBookmarkEvent(c *gin.Context) {
	var in models.BookmarkEventCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := h.Repo.Create(c.Request.Context(), in)
	if err != nil {
		utils.GetLogger().Error("failed to create bookmarked event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bookmarked event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteBookmarkEvent handles DELETE /delete-bookmark-event/:id.
func (h *BookmarkHandler) DeleteBookmarkEvent(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bookmarked event not found"})
			return
		}
		utils.GetLogger().Error("failed to delete bookmarked event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bookmarked event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmarked event deleted successfully", "deleted_id": id})
}

// DeleteBookmarkEventByTitle handles
// DELETE /delete-bookmark-event-by-title?event_title=....
func (h *BookmarkHandler) DeleteBookmarkEventByTitle(c *gin.Context) {
	title := c.Query("event_title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_title query parameter is required"})
		return
	}
	count, err := h.Repo.DeleteByTitle(c.Request.Context(), title)
	if err != nil {
		utils.GetLogger().Error("failed to delete bookmarked events by title", zap.String("title", title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bookmarked events by title"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No bookmarked events found with the given title"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmarked events deleted successfully", "deleted_count": count})
}
