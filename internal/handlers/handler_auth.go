package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
	"github.com/SscSPs/cylinder_holdings/internal/middleware"
)

// loginRate caps login attempts per client IP.
const loginRate = "5-M"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the public login route.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)

	loginLimiter, _ := middleware.NewMemoryLimiter(loginRate)
	limitMiddleware := limitergin.NewMiddleware(loginLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token carrying the admin claim.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// Permissions godoc
// @Summary Current user permissions
// @Description Reports whether the authenticated user holds administrator privilege.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.PermissionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /permissions [get]
func (h *AuthHandler) Permissions(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.PermissionsResponse{UserID: actor.UserID, IsAdmin: actor.IsAdmin})
}
