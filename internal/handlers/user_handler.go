package handlers

import (
	"net/http"

	"promanager_backend/internal/middleware"
	"promanager_backend/internal/services"
	"promanager_backend/internal/services/dto"
	"promanager_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	user := rg.Group("/user")
	{
		user.POST("/create", h.Create)
		user.POST("/login", h.Login)
		user.POST("/recovery", h.SendRecoveryCode)
		// Unauthenticated by design: the password reset runs before the user
		// has a token. Ordering note: the static /update route must coexist
		// with /update/:id below.
		user.PUT("/update", h.UpdatePasswordByEmail)

		user.GET("/profile", authMW, h.Profile)
		user.GET("/all", authMW, h.FetchAll)
		user.PUT("/update/:id", authMW, h.Update)
		user.DELETE("/delete/:id", authMW, h.Delete)
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tokenRes, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenRes)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tokenRes, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenRes)
}

func (h *UserHandler) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Unauthorized! No user ID found in token."))
		return
	}

	user, err := h.userService.Profile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Sanitized()})
}

func (h *UserHandler) FetchAll(c *gin.Context) {
	users, err := h.userService.FetchAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	sanitized := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		sanitized = append(sanitized, users[i].Sanitized())
	}
	c.JSON(http.StatusOK, gin.H{"users": sanitized})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.RequireParam(c, "id", "User id is required!")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tokenRes, err := h.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenRes)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.RequireParam(c, "id", "User id is required!")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) SendRecoveryCode(c *gin.Context) {
	var req dto.RecoveryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.SendRecoveryCode(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recovery code sent successfully."})
}

func (h *UserHandler) UpdatePasswordByEmail(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.UpdatePasswordByEmail(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password successfully changed!"})
}
