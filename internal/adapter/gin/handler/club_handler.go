package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"club-service/internal/usecase/club"
)

// ClubHandler handles HTTP requests for clubs and membership
type ClubHandler struct {
	uc  club.Usecase
	log *zap.Logger
}

// NewClubHandler creates a new ClubHandler instance
func NewClubHandler(uc club.Usecase, log *zap.Logger) *ClubHandler {
	return &ClubHandler{
		uc:  uc,
		log: log,
	}
}

// CreateClubRequest represents the HTTP request body for creating a club
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateClubResponse is returned after a club is created
type CreateClubResponse struct {
	Message string `json:"message"`
	ClubID  int64  `json:"club_id"`
}

// ClubResponse is one entry of GET /clubs. Members and Pending are the stored
// comma-separated lists.
type ClubResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     string `json:"members"`
	Pending     string `json:"pending"`
}

// MembersResponse is returned by GET /clubs/:id/members
type MembersResponse struct {
	Members []string `json:"members"`
	Pending []string `json:"pending"`
}

// MessageResponse carries a human readable outcome
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateClub handles POST /clubs
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create club request", zap.Error(err))
		badBody(c, err)
		return
	}

	resp, err := h.uc.CreateClub(c.Request.Context(), club.CreateClubRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.log.Warn("CreateClub failed", zap.String("name", req.Name), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateClubResponse{Message: "Club created", ClubID: resp.ID})
}

// ListClubs handles GET /clubs
func (h *ClubHandler) ListClubs(c *gin.Context) {
	resp, err := h.uc.ListClubs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	clubs := make([]ClubResponse, len(resp.Clubs))
	for i, cl := range resp.Clubs {
		clubs[i] = ClubResponse{
			ID:          cl.ID,
			Name:        cl.Name,
			Description: cl.Description,
			Members:     cl.Members,
			Pending:     cl.Pending,
		}
	}

	c.JSON(http.StatusOK, clubs)
}

// JoinClub handles POST /clubs/:id/join?user_id=N
func (h *ClubHandler) JoinClub(c *gin.Context) {
	clubID, ok := parseID(c.Param("id"))
	if !ok {
		h.log.Warn("Invalid club ID", zap.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Club ID must be a positive number",
		})
		return
	}

	userID, ok := parseID(c.Query("user_id"))
	if !ok {
		h.log.Warn("Invalid user ID", zap.String("user_id", c.Query("user_id")))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "user_id must be a positive number",
		})
		return
	}

	resp, err := h.uc.RequestJoin(c.Request.Context(), club.RequestJoinRequest{
		ClubID: clubID,
		UserID: userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: resp.Message})
}

// GetMembers handles GET /clubs/:id/members
func (h *ClubHandler) GetMembers(c *gin.Context) {
	clubID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Club ID must be a positive number",
		})
		return
	}

	resp, err := h.uc.GetMembers(c.Request.Context(), club.GetMembersRequest{ClubID: clubID})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MembersResponse{Members: resp.Members, Pending: resp.Pending})
}
