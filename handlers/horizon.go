package handlers

import (
	"errors"
	"net/http"
	"strconv"

	horizonRepo "eventhorizon/database/repository/horizon"
	"eventhorizon/models"
	"eventhorizon/services/horizon"
	"eventhorizon/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HorizonHandler serves the horizon endpoints through the caching service.
type HorizonHandler struct {
	Svc horizon.Service
}

// NewHorizonHandler constructs a HorizonHandler.
func NewHorizonHandler(svc horizon.Service) *HorizonHandler {
	return &HorizonHandler{Svc: svc}
}

// GetHorizons handles GET /get-horizon with optional horizon_date filter,
// limit/skip pagination and a skip_cache escape hatch.
func (h *HorizonHandler) GetHorizons(c *gin.Context) {
	horizonDate := normalizeOptional(c.Query("horizon_date"))

	limit, err := parseInt64Query(c, "limit", horizonRepo.DefaultListLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}
	skip, err := parseInt64Query(c, "skip", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	skipCache := c.Query("skip_cache") == "true"

	items, err := h.Svc.GetAll(c.Request.Context(), horizonDate, limit, skip, skipCache)
	if err != nil {
		utils.GetLogger().Error("failed to list horizons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve horizons"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetHorizonByID handles GET /get-horizon/:id.
func (h *HorizonHandler) GetHorizonByID(c *gin.Context) {
	id := c.Param("id")
	item, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Horizon not found"})
			return
		}
		utils.GetLogger().Error("failed to get horizon", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve horizon"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// SearchHorizons handles GET /search-horizon?q=....
func (h *HorizonHandler) SearchHorizons(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}
	items, err := h.Svc.SearchByTitle(c.Request.Context(), query)
	if err != nil {
		utils.GetLogger().Error("failed to search horizons", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search horizons"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddHorizon handles POST /add-horizon. The type and horizon_date query
// parameters override the body when present; null-ish date strings read as
// absent.
func (h *HorizonHandler) AddHorizon(c *gin.Context) {
	var in models.HorizonCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if t := c.Query("type"); t != "" {
		in.Type = t
	}
	if in.Type == "" {
		in.Type = "none"
	}
	if _, present := c.GetQuery("horizon_date"); present {
		if d := normalizeOptional(c.Query("horizon_date")); d != "" {
			in.HorizonDate = &d
		} else {
			in.HorizonDate = nil
		}
	}

	item, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		utils.GetLogger().Error("failed to create horizon", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create horizon"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateHorizon handles PUT /update-horizon/:id with a partial payload.
func (h *HorizonHandler) UpdateHorizon(c *gin.Context) {
	id := c.Param("id")
	var in models.HorizonUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Svc.UpdateByID(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Horizon not found"})
			return
		}
		utils.GetLogger().Error("failed to update horizon", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update horizon"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// EditHorizon handles PUT /edit-horizon: match on existing_* fields, apply
// new_* values, return the updated documents.
func (h *HorizonHandler) EditHorizon(c *gin.Context) {
	var edit models.HorizonEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := h.Svc.EditByCriteria(c.Request.Context(), edit)
	if err != nil {
		if errors.Is(err, horizonRepo.ErrNoEditCriteria) || errors.Is(err, horizonRepo.ErrNoEditUpdates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("failed to edit horizons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to edit horizons"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No horizons matched the given criteria"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// DeleteHorizon handles DELETE /delete-horizon/:id.
func (h *HorizonHandler) DeleteHorizon(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Horizon not found"})
			return
		}
		utils.GetLogger().Error("failed to delete horizon", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete horizon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Horizon deleted successfully", "deleted_id": id})
}

// DeleteHorizonByTitle handles DELETE /delete-horizon-by-title?title=....
func (h *HorizonHandler) DeleteHorizonByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}
	count, err := h.Svc.DeleteByTitle(c.Request.Context(), title)
	if err != nil {
		utils.GetLogger().Error("failed to delete horizons by title", zap.String("title", title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete horizons by title"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No horizons found with the given title"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Horizons deleted successfully", "deleted_count": count})
}

// normalizeOptional collapses the null-ish strings web clients send for an
// absent value.
func normalizeOptional(v string) string {
	switch v {
	case "null", "None", "undefined", "":
		return ""
	}
	return v
}

func parseInt64Query(c *gin.Context, name string, def int64) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}
