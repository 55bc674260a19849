package handlers

import (
	"errors"
	"net/http"

	apperrors "course-cluster-backend/internal/errors"
	"course-cluster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RoomHandler handles HTTP requests for room operations
type RoomHandler struct {
	roomService service.RoomServiceInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService service.RoomServiceInterface) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// ListRooms handles GET /api/rooms
// @Summary List rooms
// @Description Return every room ordered by id
// @Tags rooms
// @Produce json
// @Success 200 {array} service.RoomResponse "Successfully retrieved rooms"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rooms", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id
// @Summary Get room by ID
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} service.RoomResponse "Successfully retrieved room"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	room, err := h.roomService.GetRoom(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get room", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body service.CreateRoomRequest true "Room data"
// @Success 201 {object} service.RoomResponse "Successfully created room"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/rooms/:id
// @Summary Replace a room
// @Description Overwrites name, length and width. All fields are required.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param room body service.UpdateRoomRequest true "Room data"
// @Success 200 {object} service.RoomResponse "Successfully updated room"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req service.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoom(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id
// @Summary Delete a room
// @Description Deletes the room and every placement inside it. Unknown ids succeed.
// @Tags rooms
// @Param id path int true "Room ID"
// @Success 204 "Room deleted"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	if err := h.roomService.DeleteRoom(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
