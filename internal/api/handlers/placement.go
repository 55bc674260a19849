package handlers

import (
	"errors"
	"net/http"

	apperrors "course-cluster-backend/internal/errors"
	"course-cluster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlacementHandler handles HTTP requests for placements
type PlacementHandler struct {
	placementService service.PlacementServiceInterface
}

// NewPlacementHandler creates a new placement handler
func NewPlacementHandler(placementService service.PlacementServiceInterface) *PlacementHandler {
	return &PlacementHandler{
		placementService: placementService,
	}
}

// ListPlacements handles GET /api/placements
// @Summary List all placements
// @Description Every placement, flattened with the current attributes of its object
// @Tags placements
// @Produce json
// @Success 200 {array} service.PlacementResponse "Successfully retrieved placements"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /placements [get]
func (h *PlacementHandler) ListPlacements(c *gin.Context) {
	placements, err := h.placementService.ListPlacements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get placements", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, placements)
}

// ListPlacementsByRoom handles GET /api/placements/room/:roomId
// @Summary List placements in a room
// @Description An unknown room returns an empty list
// @Tags placements
// @Produce json
// @Param roomId path int true "Room ID"
// @Success 200 {array} service.PlacementResponse "Successfully retrieved placements"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /placements/room/{roomId} [get]
func (h *PlacementHandler) ListPlacementsByRoom(c *gin.Context) {
	roomID, ok := parseID(c, "roomId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	placements, err := h.placementService.ListPlacementsByRoom(roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get placements", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, placements)
}

// GetPlacement handles GET /api/placements/:id
// @Summary Get placement by ID
// @Tags placements
// @Produce json
// @Param id path int true "Placement ID"
// @Success 200 {object} service.PlacementResponse "Successfully retrieved placement"
// @Failure 400 {object} map[string]interface{} "Invalid placement ID"
// @Failure 404 {object} map[string]interface{} "Placement not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /placements/{id} [get]
func (h *PlacementHandler) GetPlacement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid placement ID"})
		return
	}

	placement, err := h.placementService.GetPlacement(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlacementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get placement", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, placement)
}

// CreatePlacement handles POST /api/placements
// @Summary Place an object in a room
// @Description Rotation defaults to 0. A missing room or object is reported as 400.
// @Tags placements
// @Accept json
// @Produce json
// @Param placement body service.CreatePlacementRequest true "Placement data"
// @Success 201 {object} service.PlacementResponse "Successfully created placement"
// @Failure 400 {object} map[string]interface{} "Invalid request, or room/object not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /placements [post]
func (h *PlacementHandler) CreatePlacement(c *gin.Context) {
	var req service.CreatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	placement, err := h.placementService.CreatePlacement(&req)
	if err != nil {
		// a dangling room or object reference is a client error here, not a missing resource
		if apperrors.IsNotFound(err) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create placement", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, placement)
}

// UpdatePlacement handles PUT /api/placements/:id
// @Summary Move a placement
// @Description Overwrites x and y. Rotation changes only when supplied.
// @Tags placements
// @Accept json
// @Produce json
// @Param id path int true "Placement ID"
// @Param placement body service.UpdatePlacementRequest true "Position data"
// @Success 200 {object} service.PlacementResponse "Successfully updated placement"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 404 {object} map[string]interface{} "Placement not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /placements/{id} [put]
func (h *PlacementHandler) UpdatePlacement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid placement ID"})
		return
	}

	var req service.UpdatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	placement, err := h.placementService.UpdatePlacement(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPlacementNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update placement", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, placement)
}

// DeletePlacement handles DELETE /api/placements/:id
// @Summary Delete a placement
// @Description Unknown ids succeed
// @Tags placements
// @Param id path int true "Placement ID"
// @Success 204 "Placement deleted"
// @Failure 400 {object} map[string]interface{} "Invalid placement ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /placements/{id} [delete]
func (h *PlacementHandler) DeletePlacement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid placement ID"})
		return
	}

	if err := h.placementService.DeletePlacement(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete placement", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
