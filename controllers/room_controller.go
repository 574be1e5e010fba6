package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aura-vc/aura-backend/livekit"
	"github.com/aura-vc/aura-backend/models"
	"github.com/aura-vc/aura-backend/services"
)

type CreateRoomInput struct {
	UserName        string `json:"userName" binding:"required" example:"kim"`
	RoomTitle       string `json:"roomTitle" example:"sprint planning"`
	Description     string `json:"description" example:"3pm sprint meeting"`
	MaxParticipants int    `json:"maxParticipants" binding:"omitempty,gte=2,lte=50" example:"10"`
}

type GetTokenInput struct {
	RoomID   string `json:"roomId" binding:"required" example:"room-d0340570-f900-469c-a4a5-63eeacba83dc"`
	UserName string `json:"userName" binding:"required" example:"lee"`
}

type CreateRoomResponse struct {
	RoomID          string `json:"roomId"`
	RoomURL         string `json:"roomUrl"`
	RoomTitle       string `json:"roomTitle"`
	Description     string `json:"description"`
	MaxParticipants int    `json:"maxParticipants"`
	UserName        string `json:"userName"`
	Token           string `json:"token"`
	LivekitURL      string `json:"livekitUrl"`
}

type TokenResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type RoomListResponse struct {
	Rooms []models.RoomMetadata `json:"rooms"`
	Total int                   `json:"total"`
}

// RoomController serves the room lifecycle and token endpoints.
type RoomController struct {
	service     *services.RoomService
	livekitURL  string
	frontendURL string
}

func NewRoomController(service *services.RoomService, livekitURL, frontendURL string) *RoomController {
	return &RoomController{
		service:     service,
		livekitURL:  livekitURL,
		frontendURL: frontendURL,
	}
}

// CreateRoom godoc
// @Summary Create a new room
// @Description Creates a room on the LiveKit server, caches its metadata and returns a join token for the creator
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body CreateRoomInput true "Room creation"
// @Success 201 {object} CreateRoomResponse "Room created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Room creation failed"
// @Router /api/room/create [post]
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := rc.service.CreateRoom(c.Request.Context(), services.CreateRoomParams{
		UserName:        input.UserName,
		RoomTitle:       input.RoomTitle,
		Description:     input.Description,
		MaxParticipants: input.MaxParticipants,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidMaxParticipants) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).Error("room creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}

	meta := created.Metadata
	c.JSON(http.StatusCreated, CreateRoomResponse{
		RoomID:          meta.RoomID,
		RoomURL:         fmt.Sprintf("%s/room/%s", rc.frontendURL, meta.RoomID),
		RoomTitle:       meta.RoomTitle,
		Description:     meta.Description,
		MaxParticipants: meta.MaxParticipants,
		UserName:        meta.CreatedBy,
		Token:           created.Token,
		LivekitURL:      rc.livekitURL,
	})
}

// GetToken godoc
// @Summary Issue a join token
// @Description Issues a LiveKit access token for joining an existing room
// @Tags token
// @Accept json
// @Produce json
// @Param token body GetTokenInput true "Token request"
// @Success 201 {object} TokenResponse "Token issued"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Signing credentials not configured"
// @Router /api/token [post]
func (rc *RoomController) GetToken(c *gin.Context) {
	var input GetTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := rc.service.JoinToken(input.RoomID, input.UserName)
	if err != nil {
		if errors.Is(err, livekit.ErrMissingCredentials) {
			logrus.WithError(err).Error("token issuance misconfigured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "LiveKit API key or secret not configured"})
			return
		}
		logrus.WithError(err).Error("token issuance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{
		Token: token,
		URL:   rc.livekitURL,
	})
}

// GetRoom godoc
// @Summary Get room details
// @Description Returns the cached metadata for a room
// @Tags rooms
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} models.RoomMetadata "Room metadata"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/room/{roomId} [get]
func (rc *RoomController) GetRoom(c *gin.Context) {
	roomID := c.Param("roomId")

	meta, err := rc.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Room '%s' not found", roomID)})
			return
		}
		logrus.WithError(err).Error("room lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch room"})
		return
	}

	c.JSON(http.StatusOK, meta)
}

// ListRooms godoc
// @Summary List all rooms
// @Description Returns every room whose metadata has not yet expired
// @Tags rooms
// @Produce json
// @Success 200 {object} RoomListResponse "Room list"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/rooms [get]
func (rc *RoomController) ListRooms(c *gin.Context) {
	rooms, err := rc.service.ListRooms(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("room listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, RoomListResponse{
		Rooms: rooms,
		Total: len(rooms),
	})
}

// DeleteRoom godoc
// @Summary Delete a room's metadata
// @Description Removes the cached metadata record; the media server tears the room itself down once empty
// @Tags rooms
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} map[string]string "Room deleted"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/room/{roomId} [delete]
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	roomID := c.Param("roomId")

	if err := rc.service.DeleteRoom(c.Request.Context(), roomID); err != nil {
		logrus.WithError(err).Error("room deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// RefreshRoom godoc
// @Summary Refresh a room's retention window
// @Description Restarts the metadata TTL for a room; a no-op when the room is unknown
// @Tags rooms
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} map[string]string "TTL refreshed"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/room/{roomId}/refresh [post]
func (rc *RoomController) RefreshRoom(c *gin.Context) {
	roomID := c.Param("roomId")

	if err := rc.service.TouchRoom(c.Request.Context(), roomID); err != nil {
		logrus.WithError(err).Error("ttl refresh failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh room TTL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room TTL refreshed"})
}
