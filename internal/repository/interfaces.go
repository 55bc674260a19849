package repository

import (
	"course-cluster-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RoomRepositoryInterface defines the interface for room repository operations
type RoomRepositoryInterface interface {
	GetAll() ([]models.Room, error)
	GetByID(id uint) (*models.Room, error)
	Create(room *models.Room) error
	Update(room *models.Room) error
	Delete(id uint) error
}

// ObjectRepositoryInterface defines the interface for catalog object repository operations
type ObjectRepositoryInterface interface {
	GetAll() ([]models.RoomObject, error)
	GetByID(id uint) (*models.RoomObject, error)
	Count() (int64, error)
	Create(object *models.RoomObject) error
	Update(object *models.RoomObject) error
	Delete(id uint) error
}

// PlacementRepositoryInterface defines the interface for placement repository operations
type PlacementRepositoryInterface interface {
	GetByID(id uint) (*models.Placement, error)
	GetDetailByID(id uint) (*models.PlacementDetail, error)
	GetAllDetails() ([]models.PlacementDetail, error)
	GetDetailsByRoomID(roomID uint) ([]models.PlacementDetail, error)
	Create(placement *models.Placement) error
	Update(placement *models.Placement) error
	Delete(id uint) error
}
