package service

import (
	"errors"
	"fmt"

	"course-cluster-backend/internal/database/models"
	apperrors "course-cluster-backend/internal/errors"
	"course-cluster-backend/internal/logger"
	"course-cluster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PlacementService positions catalog objects inside rooms and shapes the joined view
type PlacementService struct {
	repo       repository.PlacementRepositoryInterface
	roomRepo   repository.RoomRepositoryInterface
	objectRepo repository.ObjectRepositoryInterface
	validator  *validator.Validate
}

// Ensure PlacementService implements PlacementServiceInterface
var _ PlacementServiceInterface = (*PlacementService)(nil)

// NewPlacementService creates a new PlacementService
func NewPlacementService(
	repo repository.PlacementRepositoryInterface,
	roomRepo repository.RoomRepositoryInterface,
	objectRepo repository.ObjectRepositoryInterface,
	validator *validator.Validate,
) *PlacementService {
	return &PlacementService{
		repo:       repo,
		roomRepo:   roomRepo,
		objectRepo: objectRepo,
		validator:  validator,
	}
}

// CreatePlacementRequest represents the request to place an object in a room.
// Rotation defaults to 0 when omitted.
type CreatePlacementRequest struct {
	RoomID   uint     `json:"roomId" validate:"required" example:"1"`
	ObjectID uint     `json:"objectId" validate:"required" example:"2"`
	X        *float64 `json:"x" validate:"required" example:"1"`
	Y        *float64 `json:"y" validate:"required" example:"2"`
	Rotation *float64 `json:"rotation,omitempty" example:"90"`
}

// UpdatePlacementRequest moves a placement. Rotation is left unchanged when omitted.
type UpdatePlacementRequest struct {
	X        *float64 `json:"x" validate:"required" example:"5"`
	Y        *float64 `json:"y" validate:"required" example:"5"`
	Rotation *float64 `json:"rotation,omitempty" example:"180"`
}

// PlacementResponse is a placement flattened with the current attributes of its object
type PlacementResponse struct {
	PlacementID  uint     `json:"placementId"`
	RoomID       uint     `json:"roomId"`
	ObjectID     uint     `json:"objectId"`
	ObjectName   *string  `json:"objectName"`
	ObjectWidth  *float64 `json:"objectWidth"`
	ObjectHeight *float64 `json:"objectHeight"`
	ObjectColor  *string  `json:"objectColor"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Rotation     float64  `json:"rotation"`
}

// ListPlacements returns every placement in every room
func (s *PlacementService) ListPlacements() ([]PlacementResponse, error) {
	details, err := s.repo.GetAllDetails()
	if err != nil {
		return nil, fmt.Errorf("failed to get placements: %w", err)
	}
	return toPlacementResponses(details), nil
}

// ListPlacementsByRoom returns the placements of one room. An unknown room yields an empty list.
func (s *PlacementService) ListPlacementsByRoom(roomID uint) ([]PlacementResponse, error) {
	details, err := s.repo.GetDetailsByRoomID(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get placements for room: %w", err)
	}
	return toPlacementResponses(details), nil
}

// GetPlacement retrieves a single shaped placement
func (s *PlacementService) GetPlacement(id uint) (*PlacementResponse, error) {
	detail, err := s.repo.GetDetailByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("failed to get placement: %w", err)
	}

	resp := toPlacementResponse(detail)
	return &resp, nil
}

// CreatePlacement validates that the room and object exist, then stores the placement
func (s *PlacementService) CreatePlacement(req *CreatePlacementRequest) (*PlacementResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.roomRepo.GetByID(req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to verify room: %w", err)
	}

	object, err := s.objectRepo.GetByID(req.ObjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to verify object: %w", err)
	}

	placement := &models.Placement{
		RoomID:   req.RoomID,
		ObjectID: req.ObjectID,
		X:        *req.X,
		Y:        *req.Y,
	}
	if req.Rotation != nil {
		placement.Rotation = *req.Rotation
	}

	if err := s.repo.Create(placement); err != nil {
		return nil, fmt.Errorf("failed to create placement: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"placement_id": placement.ID,
		"room_id":      placement.RoomID,
		"object_id":    placement.ObjectID,
	}).Info("placement created")

	resp := toPlacementResponse(newPlacementDetail(placement, object))
	return &resp, nil
}

// UpdatePlacement moves a placement and optionally rotates it. Room and object never change.
func (s *PlacementService) UpdatePlacement(id uint, req *UpdatePlacementRequest) (*PlacementResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	placement, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("failed to get placement: %w", err)
	}

	placement.X = *req.X
	placement.Y = *req.Y
	if req.Rotation != nil {
		placement.Rotation = *req.Rotation
	}

	if err := s.repo.Update(placement); err != nil {
		return nil, fmt.Errorf("failed to update placement: %w", err)
	}

	logger.New().WithField("placement_id", placement.ID).Info("placement updated")

	return s.GetPlacement(placement.ID)
}

// DeletePlacement removes a placement; a missing id is not an error
func (s *PlacementService) DeletePlacement(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		logger.New().WithField("placement_id", id).WithError(err).Error("placement delete failed")
		return fmt.Errorf("failed to delete placement: %w", err)
	}

	logger.New().WithField("placement_id", id).Info("placement deleted")
	return nil
}

func newPlacementDetail(p *models.Placement, o *models.RoomObject) *models.PlacementDetail {
	return &models.PlacementDetail{
		PlacementID:  p.ID,
		RoomID:       p.RoomID,
		ObjectID:     p.ObjectID,
		ObjectName:   &o.Name,
		ObjectWidth:  &o.Width,
		ObjectHeight: &o.Height,
		ObjectColor:  o.Color,
		X:            p.X,
		Y:            p.Y,
		Rotation:     p.Rotation,
	}
}

func toPlacementResponses(details []models.PlacementDetail) []PlacementResponse {
	responses := make([]PlacementResponse, len(details))
	for i := range details {
		responses[i] = toPlacementResponse(&details[i])
	}
	return responses
}

func toPlacementResponse(d *models.PlacementDetail) PlacementResponse {
	return PlacementResponse{
		PlacementID:  d.PlacementID,
		RoomID:       d.RoomID,
		ObjectID:     d.ObjectID,
		ObjectName:   d.ObjectName,
		ObjectWidth:  d.ObjectWidth,
		ObjectHeight: d.ObjectHeight,
		ObjectColor:  d.ObjectColor,
		X:            d.X,
		Y:            d.Y,
		Rotation:     d.Rotation,
	}
}
