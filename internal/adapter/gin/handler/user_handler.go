package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"club-service/internal/usecase/user"
)

// UserHandler handles HTTP requests for registration and login
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// RegisterRequest represents the HTTP request body for registering a user
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the HTTP request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserIDResponse is returned by register and login.
type UserIDResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// Register handles POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid register request", zap.Error(err))
		badBody(c, err)
		return
	}

	resp, err := h.uc.Register(c.Request.Context(), user.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Warn("Register failed", zap.String("email", req.Email), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserIDResponse{Message: "User registered", UserID: resp.ID})
}

// Login handles POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid login request", zap.Error(err))
		badBody(c, err)
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), user.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserIDResponse{Message: "Login successful", UserID: resp.ID})
}
