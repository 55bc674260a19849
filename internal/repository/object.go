package repository

import (
	"course-cluster-backend/internal/database/models"

	"gorm.io/gorm"
)

// ObjectRepository handles database operations for catalog objects
type ObjectRepository struct {
	db *gorm.DB
}

// Ensure ObjectRepository implements ObjectRepositoryInterface
var _ ObjectRepositoryInterface = (*ObjectRepository)(nil)

// NewObjectRepository creates a new object repository
func NewObjectRepository(db *gorm.DB) *ObjectRepository {
	return &ObjectRepository{db: db}
}

// GetAll retrieves all catalog objects ordered by id
func (r *ObjectRepository) GetAll() ([]models.RoomObject, error) {
	var objects []models.RoomObject
	if err := r.db.Order("id ASC").Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

// GetByID retrieves a catalog object by its id
func (r *ObjectRepository) GetByID(id uint) (*models.RoomObject, error) {
	var object models.RoomObject
	if err := r.db.First(&object, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &object, nil
}

// Count returns the number of catalog objects
func (r *ObjectRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.RoomObject{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Create inserts a new catalog object
func (r *ObjectRepository) Create(object *models.RoomObject) error {
	return r.db.Create(object).Error
}

// Update saves all columns of an existing catalog object
func (r *ObjectRepository) Update(object *models.RoomObject) error {
	return r.db.Save(object).Error
}

// Delete removes a catalog object and every placement of it in one transaction.
// Deleting an id that does not exist is not an error.
func (r *ObjectRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("object_id = ?", id).Delete(&models.Placement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RoomObject{}, "id = ?", id).Error
	})
}
