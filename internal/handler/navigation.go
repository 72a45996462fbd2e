package handler

import (
	"context"
	"io"
	"net/http"

	"campus-map-api/internal/animator"
	"campus-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

// NavigationHandler handles playback, camera streaming and external hand-off
type NavigationHandler struct {
	service NavigationService
	stream  CameraStream
}

// NavigationService interface for dependency injection
type NavigationService interface {
	ExternalURL(platform string) (string, error)
	StartPlayback(ctx context.Context) (animator.Status, bool)
	CancelPlayback() bool
	PlaybackStatus() animator.Status
}

// CameraStream hands out subscriptions to camera moves.
type CameraStream interface {
	Subscribe() (<-chan models.CameraMove, func())
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(svc NavigationService, stream CameraStream) *NavigationHandler {
	return &NavigationHandler{service: svc, stream: stream}
}

// PlaybackResponse is the body of the playback endpoints.
type PlaybackResponse struct {
	Started   *bool           `json:"started,omitempty"`
	Cancelled *bool           `json:"cancelled,omitempty"`
	Status    animator.Status `json:"status"`
}

// StartPlayback handles POST /navigation/playback requests
//
//	@Summary	Fly the camera along the current route
//	@Tags		navigation
//	@Produce	json
//	@Success	202	{object}	PlaybackResponse
//	@Success	200	{object}	PlaybackResponse	"no route to play"
//	@Router		/navigation/playback [post]
func (h *NavigationHandler) StartPlayback(c *gin.Context) {
	status, started := h.service.StartPlayback(c.Request.Context())

	code := http.StatusOK
	if started {
		code = http.StatusAccepted
	}
	c.JSON(code, PlaybackResponse{Started: &started, Status: status})
}

// CancelPlayback handles DELETE /navigation/playback requests
//
//	@Summary	Stop playback
//	@Tags		navigation
//	@Produce	json
//	@Success	200	{object}	PlaybackResponse
//	@Router		/navigation/playback [delete]
func (h *NavigationHandler) CancelPlayback(c *gin.Context) {
	cancelled := h.service.CancelPlayback()
	c.JSON(http.StatusOK, PlaybackResponse{Cancelled: &cancelled, Status: h.service.PlaybackStatus()})
}

// PlaybackStatus handles GET /navigation/playback requests
//
//	@Summary	Playback status
//	@Tags		navigation
//	@Produce	json
//	@Success	200	{object}	PlaybackResponse
//	@Router		/navigation/playback [get]
func (h *NavigationHandler) PlaybackStatus(c *gin.Context) {
	c.JSON(http.StatusOK, PlaybackResponse{Status: h.service.PlaybackStatus()})
}

// CameraEvents handles GET /navigation/camera, streaming camera moves as server-sent events
//
//	@Summary	Stream of camera moves
//	@Tags		navigation
//	@Produce	text/event-stream
//	@Success	200
//	@Router		/navigation/camera [get]
func (h *NavigationHandler) CameraEvents(c *gin.Context) {
	moves, unsubscribe := h.stream.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case move, ok := <-moves:
			if !ok {
				return false
			}
			c.SSEvent("camera", move)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// ExternalNavigation handles GET /navigation/external requests
//
//	@Summary	Deep link into the platform maps application
//	@Tags		navigation
//	@Produce	json
//	@Param		platform	query		string	false	"ios, android or web"
//	@Success	200			{object}	map[string]string
//	@Failure	400			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/navigation/external [get]
func (h *NavigationHandler) ExternalNavigation(c *gin.Context) {
	url, err := h.service.ExternalURL(c.Query("platform"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
