package handlers

import (
	"net/http"

	"promanager_backend/internal/services"
	"promanager_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AffiliationHandler struct {
	*BaseHandler
	affiliationService services.AffiliationService
}

func NewAffiliationHandler(base *BaseHandler, affiliationService services.AffiliationService) *AffiliationHandler {
	return &AffiliationHandler{BaseHandler: base, affiliationService: affiliationService}
}

func (h *AffiliationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	affiliation := rg.Group("/affiliation", authMW)
	{
		affiliation.POST("/create", h.Create)
		affiliation.GET("/all", h.FetchAll)
		affiliation.GET("/:id", h.FetchUserAffiliations)
		affiliation.DELETE("/:applicationId", h.End)
		affiliation.POST("/:applicationId/terminate", h.Terminate)
	}
}

func (h *AffiliationHandler) Create(c *gin.Context) {
	var req dto.CreateAffiliationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	affiliation, err := h.affiliationService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"affiliation": affiliation})
}

func (h *AffiliationHandler) FetchAll(c *gin.Context) {
	affiliations, err := h.affiliationService.FetchAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"affiliations": affiliations})
}

func (h *AffiliationHandler) FetchUserAffiliations(c *gin.Context) {
	id, ok := h.RequireParam(c, "id", "User ID cannot be null or empty!")
	if !ok {
		return
	}

	role := services.Role(c.Query("role"))
	affiliations, err := h.affiliationService.FetchUserAffiliations(c.Request.Context(), id, role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"affiliations": affiliations})
}

func (h *AffiliationHandler) End(c *gin.Context) {
	applicationID, ok := h.RequireParam(c, "applicationId", "Application ID must be provided!")
	if !ok {
		return
	}

	if err := h.affiliationService.End(c.Request.Context(), applicationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Affiliation deleted successfully!"})
}

func (h *AffiliationHandler) Terminate(c *gin.Context) {
	applicationID, ok := h.RequireParam(c, "applicationId", "Application ID must be provided!")
	if !ok {
		return
	}

	if err := h.affiliationService.Terminate(c.Request.Context(), applicationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Affiliation terminated successfully!"})
}
