package repository

import (
	"course-cluster-backend/internal/database/models"

	"gorm.io/gorm"
)

// detailColumns flattens a placement and its catalog object into one row
const detailColumns = `placements.id AS placement_id, placements.room_id, placements.object_id, ` +
	`objects.name AS object_name, objects.width AS object_width, objects.height AS object_height, ` +
	`objects.color AS object_color, placements.x, placements.y, placements.rotation`

// PlacementRepository handles database operations for placements
type PlacementRepository struct {
	db *gorm.DB
}

// Ensure PlacementRepository implements PlacementRepositoryInterface
var _ PlacementRepositoryInterface = (*PlacementRepository)(nil)

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(db *gorm.DB) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// detailQuery joins placements with the live catalog row so object edits show on the next read
func (r *PlacementRepository) detailQuery() *gorm.DB {
	return r.db.Table("placements").
		Select(detailColumns).
		Joins("LEFT JOIN objects ON objects.id = placements.object_id")
}

// GetByID retrieves a bare placement row by its id
func (r *PlacementRepository) GetByID(id uint) (*models.Placement, error) {
	var placement models.Placement
	if err := r.db.First(&placement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &placement, nil
}

// GetDetailByID retrieves one placement joined with its catalog object
func (r *PlacementRepository) GetDetailByID(id uint) (*models.PlacementDetail, error) {
	var details []models.PlacementDetail
	if err := r.detailQuery().Where("placements.id = ?", id).Limit(1).Scan(&details).Error; err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &details[0], nil
}

// GetAllDetails retrieves every placement joined with its catalog object
func (r *PlacementRepository) GetAllDetails() ([]models.PlacementDetail, error) {
	var details []models.PlacementDetail
	if err := r.detailQuery().Order("placements.id ASC").Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// GetDetailsByRoomID retrieves the placements of one room joined with their catalog objects
func (r *PlacementRepository) GetDetailsByRoomID(roomID uint) ([]models.PlacementDetail, error) {
	var details []models.PlacementDetail
	if err := r.detailQuery().Where("placements.room_id = ?", roomID).Order("placements.id ASC").Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// Create inserts a new placement
func (r *PlacementRepository) Create(placement *models.Placement) error {
	return r.db.Create(placement).Error
}

// Update saves all columns of an existing placement
func (r *PlacementRepository) Update(placement *models.Placement) error {
	return r.db.Save(placement).Error
}

// Delete removes a placement; a missing id is not an error
func (r *PlacementRepository) Delete(id uint) error {
	return r.db.Delete(&models.Placement{}, "id = ?", id).Error
}
