package handlers

import (
	"net/http"

	"promanager_backend/internal/services"
	"promanager_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	*BaseHandler
	preferencesService services.PreferencesService
}

func NewPreferencesHandler(base *BaseHandler, preferencesService services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{BaseHandler: base, preferencesService: preferencesService}
}

func (h *PreferencesHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	preferences := rg.Group("/preferences", authMW)
	{
		preferences.POST("/:id", h.Create)
		preferences.PUT("/:id", h.Update)
		preferences.GET("/:id", h.Fetch)
	}
}

func (h *PreferencesHandler) Create(c *gin.Context) {
	id, ok := h.RequireParam(c, "id", "Missing or invalid user ID!")
	if !ok {
		return
	}

	var req dto.PreferencesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.preferencesService.Create(c.Request.Context(), id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *PreferencesHandler) Update(c *gin.Context) {
	id, ok := h.RequireParam(c, "id", "Missing or invalid user ID!")
	if !ok {
		return
	}

	var req dto.PreferencesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.preferencesService.Update(c.Request.Context(), id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *PreferencesHandler) Fetch(c *gin.Context) {
	id, ok := h.RequireParam(c, "id", "Missing or invalid user ID!")
	if !ok {
		return
	}

	prefs, err := h.preferencesService.Fetch(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}
