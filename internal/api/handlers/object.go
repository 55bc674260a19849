package handlers

import (
	"errors"
	"net/http"

	apperrors "course-cluster-backend/internal/errors"
	"course-cluster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ObjectHandler handles HTTP requests for the object catalog
type ObjectHandler struct {
	objectService service.ObjectServiceInterface
}

// NewObjectHandler creates a new object handler
func NewObjectHandler(objectService service.ObjectServiceInterface) *ObjectHandler {
	return &ObjectHandler{
		objectService: objectService,
	}
}

// ListObjects handles GET /api/objects
// @Summary List catalog objects
// @Tags objects
// @Produce json
// @Success 200 {array} service.ObjectResponse "Successfully retrieved objects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objects [get]
func (h *ObjectHandler) ListObjects(c *gin.Context) {
	objects, err := h.objectService.ListObjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get objects", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, objects)
}

// GetObject handles GET /api/objects/:id
// @Summary Get catalog object by ID
// @Tags objects
// @Produce json
// @Param id path int true "Object ID"
// @Success 200 {object} service.ObjectResponse "Successfully retrieved object"
// @Failure 400 {object} map[string]interface{} "Invalid object ID"
// @Failure 404 {object} map[string]interface{} "Object not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objects/{id} [get]
func (h *ObjectHandler) GetObject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid object ID"})
		return
	}

	object, err := h.objectService.GetObject(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrObjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get object", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, object)
}

// CreateObject handles POST /api/objects
// @Summary Add an object to the catalog
// @Tags objects
// @Accept json
// @Produce json
// @Param object body service.CreateObjectRequest true "Object data"
// @Success 201 {object} service.ObjectResponse "Successfully created object"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objects [post]
func (h *ObjectHandler) CreateObject(c *gin.Context) {
	var req service.CreateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	object, err := h.objectService.CreateObject(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create object", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, object)
}

// UpdateObject handles PUT /api/objects/:id
// @Summary Replace a catalog object
// @Description Overwrites name, width, height and color. Omitting color clears it.
// @Tags objects
// @Accept json
// @Produce json
// @Param id path int true "Object ID"
// @Param object body service.UpdateObjectRequest true "Object data"
// @Success 200 {object} service.ObjectResponse "Successfully updated object"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 404 {object} map[string]interface{} "Object not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objects/{id} [put]
func (h *ObjectHandler) UpdateObject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid object ID"})
		return
	}

	var req service.UpdateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	object, err := h.objectService.UpdateObject(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrObjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update object", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, object)
}

// DeleteObject handles DELETE /api/objects/:id
// @Summary Delete a catalog object
// @Description Placements of the object are deleted with it. Unknown ids succeed.
// @Tags objects
// @Param id path int true "Object ID"
// @Success 204 "Object deleted"
// @Failure 400 {object} map[string]interface{} "Invalid object ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objects/{id} [delete]
func (h *ObjectHandler) DeleteObject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid object ID"})
		return
	}

	if err := h.objectService.DeleteObject(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete object", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
