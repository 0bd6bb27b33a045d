package mazeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/beka-birhanu/labiri-api/api/identity"
	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/beka-birhanu/labiri-api/service"
	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// MazeController serves the game of the authenticated player.
type MazeController struct {
	sessions i.MazeSessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm i.MazeSessionManager) (*MazeController, error) {
	if sm == nil {
		return nil, errors.New("maze controller needs a session manager")
	}
	return &MazeController{
		sessions: sm,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	game := route.Group("/maze")
	{
		game.POST("", mc.start)
		game.GET("", mc.snapshot)
		game.DELETE("", mc.end)
		game.POST("/move", mc.move)
		game.POST("/return", mc.returnToStart)
		game.POST("/reset", mc.reset)
	}
}

// start begins a new game, replacing any game in progress.
func (mc *MazeController) start(ctx *gin.Context) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	snapshot, err := mc.sessions.Start(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while starting maze"})
		return
	}
	mc.render(ctx, http.StatusCreated, snapshot)
}

// snapshot returns the current game.
func (mc *MazeController) snapshot(ctx *gin.Context) {
	mc.withSession(ctx, mc.sessions.Snapshot)
}

// returnToStart sends the player back to the first cell.
func (mc *MazeController) returnToStart(ctx *gin.Context) {
	mc.withSession(ctx, mc.sessions.ReturnToStart)
}

// reset regenerates the current maze.
func (mc *MazeController) reset(ctx *gin.Context) {
	mc.withSession(ctx, mc.sessions.Reset)
}

// end finishes the game and returns its final state.
func (mc *MazeController) end(ctx *gin.Context) {
	mc.withSession(ctx, mc.sessions.End)
}

// move handles a directional move request.
func (mc *MazeController) move(ctx *gin.Context) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	direction, err := maze.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := mc.sessions.Move(ctx.Request.Context(), userID, direction)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &MoveResponse{
		Outcome: result.Outcome.String(),
		State:   result.Snapshot,
	})
}

// sessionCall is any session manager operation that returns a snapshot.
type sessionCall func(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error)

func (mc *MazeController) withSession(ctx *gin.Context, call sessionCall) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	snapshot, err := call(ctx.Request.Context(), userID)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	mc.render(ctx, http.StatusOK, snapshot)
}

func (mc *MazeController) fail(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrNoSession) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// render writes the snapshot as protobuf when the client asks for it, JSON otherwise.
func (mc *MazeController) render(ctx *gin.Context, status int, snapshot maze.Snapshot) {
	if ctx.NegotiateFormat(binding.MIMEJSON, binding.MIMEPROTOBUF) == binding.MIMEPROTOBUF {
		msg, err := snapshotStruct(snapshot)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.ProtoBuf(status, msg)
		return
	}
	ctx.JSON(status, snapshot)
}
