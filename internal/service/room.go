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

// RoomService provides room-related business logic
type RoomService struct {
	repo      repository.RoomRepositoryInterface
	validator *validator.Validate
}

// Ensure RoomService implements RoomServiceInterface
var _ RoomServiceInterface = (*RoomService)(nil)

// NewRoomService creates a new RoomService
func NewRoomService(repo repository.RoomRepositoryInterface, validator *validator.Validate) *RoomService {
	return &RoomService{
		repo:      repo,
		validator: validator,
	}
}

// CreateRoomRequest represents the request to create a room
type CreateRoomRequest struct {
	Name   string  `json:"name" validate:"required,max=200" example:"Dorm A"`
	Length float64 `json:"length" validate:"gt=0" example:"12"`
	Width  float64 `json:"width" validate:"gt=0" example:"10"`
}

// UpdateRoomRequest represents the request to replace a room. Every field must be supplied.
type UpdateRoomRequest struct {
	Name   string  `json:"name" validate:"required,max=200" example:"Dorm A"`
	Length float64 `json:"length" validate:"gt=0" example:"12"`
	Width  float64 `json:"width" validate:"gt=0" example:"10"`
}

// RoomResponse represents a room in API responses
type RoomResponse struct {
	ID     uint    `json:"roomId"`
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// ListRooms returns every room ordered by id
func (s *RoomService) ListRooms() ([]RoomResponse, error) {
	rooms, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	responses := make([]RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = toRoomResponse(&rooms[i])
	}
	return responses, nil
}

// GetRoom retrieves a room by id
func (s *RoomService) GetRoom(id uint) (*RoomResponse, error) {
	room, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	resp := toRoomResponse(room)
	return &resp, nil
}

// CreateRoom creates a new room
func (s *RoomService) CreateRoom(req *CreateRoomRequest) (*RoomResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	room := &models.Room{
		Name:   req.Name,
		Length: req.Length,
		Width:  req.Width,
	}
	if err := s.repo.Create(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	logger.New().WithField("room_id", room.ID).Info("room created")

	resp := toRoomResponse(room)
	return &resp, nil
}

// UpdateRoom overwrites the name and dimensions of an existing room
func (s *RoomService) UpdateRoom(id uint, req *UpdateRoomRequest) (*RoomResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	room, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	room.Name = req.Name
	room.Length = req.Length
	room.Width = req.Width

	if err := s.repo.Update(room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	logger.New().WithField("room_id", room.ID).Info("room updated")

	resp := toRoomResponse(room)
	return &resp, nil
}

// DeleteRoom removes a room together with all of its placements.
// Deleting a room that does not exist succeeds.
func (s *RoomService) DeleteRoom(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		logger.New().WithField("room_id", id).WithError(err).Error("room delete failed")
		return fmt.Errorf("failed to delete room: %w", err)
	}

	logger.New().WithField("room_id", id).Info("room deleted")
	return nil
}

func toRoomResponse(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:     room.ID,
		Name:   room.Name,
		Length: room.Length,
		Width:  room.Width,
	}
}
