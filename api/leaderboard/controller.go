// Package leaderboardapi serves the best-score ranking.
package leaderboardapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/labiri-api/api/identity"
	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// EntryResponse is one ranked player.
type EntryResponse struct {
	Rank      int64  `json:"rank"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	BestScore int    `json:"best_score"`
}

// LeaderboardController exposes the leaderboard.
type LeaderboardController struct {
	leaderboard i.Leaderboard
}

// NewLeaderboardController initializes a LeaderboardController.
func NewLeaderboardController(l i.Leaderboard) (*LeaderboardController, error) {
	if l == nil {
		return nil, errors.New("leaderboard controller needs a leaderboard")
	}
	return &LeaderboardController{leaderboard: l}, nil
}

// RegisterPublic registers public routes.
func (lc *LeaderboardController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (lc *LeaderboardController) RegisterProtected(route *gin.RouterGroup) {
	board := route.Group("/leaderboard")
	{
		board.GET("", lc.top)
		board.GET("/me", lc.me)
	}
}

// top lists the best players; ?limit= caps the list size.
func (lc *LeaderboardController) top(ctx *gin.Context) {
	limit := defaultLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(parsed, maxLimit)
	}

	entries, err := lc.leaderboard.Top(ctx.Request.Context(), int64(limit))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	response := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, toResponse(e))
	}
	ctx.JSON(http.StatusOK, response)
}

// me returns the caller's own rank.
func (lc *LeaderboardController) me(ctx *gin.Context) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	entry, err := lc.leaderboard.Standing(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, i.ErrNotRanked) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "not ranked yet"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, toResponse(entry))
}

func toResponse(e i.LeaderboardEntry) EntryResponse {
	return EntryResponse{
		Rank:      e.Rank,
		UserID:    e.UserID.String(),
		Username:  e.Username,
		BestScore: e.BestScore,
	}
}
