package handlers

import (
	"net/http"

	"promanager_backend/internal/services"
	"promanager_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	application := rg.Group("/application", authMW)
	{
		application.POST("/create", h.Create)
		application.PUT("/update", h.SetStatus)
		application.GET("/all", h.FetchAll)
		application.GET("/:id", h.FetchUserApplications)
		application.GET("/:id/:applicationId", h.FetchApplication)
		application.DELETE("/:applicationId", h.Delete)
		application.POST("/:applicationId/accept", h.Accept)
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": app})
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.applicationService.SetStatus(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully!"})
}

func (h *ApplicationHandler) FetchAll(c *gin.Context) {
	apps, err := h.applicationService.FetchAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) FetchUserApplications(c *gin.Context) {
	id, ok := h.RequireParam(c, "id", "User ID cannot be null or empty!")
	if !ok {
		return
	}

	role := services.Role(c.Query("role"))
	apps, err := h.applicationService.FetchUserApplications(c.Request.Context(), id, role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) FetchApplication(c *gin.Context) {
	id, ok := h.RequireParam(c, "id", "User ID and Application ID must be provided!")
	if !ok {
		return
	}
	applicationID, ok := h.RequireParam(c, "applicationId", "User ID and Application ID must be provided!")
	if !ok {
		return
	}

	app, err := h.applicationService.FetchApplication(c.Request.Context(), id, applicationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": app})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	applicationID, ok := h.RequireParam(c, "applicationId", "Application ID must be provided!")
	if !ok {
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), applicationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully!"})
}

func (h *ApplicationHandler) Accept(c *gin.Context) {
	applicationID, ok := h.RequireParam(c, "applicationId", "Application ID must be provided!")
	if !ok {
		return
	}

	affiliation, err := h.applicationService.Accept(c.Request.Context(), applicationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"affiliation": affiliation})
}
