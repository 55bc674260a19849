package models

// RoomObject is a catalog entry for a placeable item. Height is the second planar
// dimension of the footprint, not a vertical measure.
type RoomObject struct {
	BaseModel
	Name   string  `json:"name" gorm:"not null"`
	Width  float64 `json:"width" gorm:"not null"`
	Height float64 `json:"height" gorm:"not null"`
	Color  *string `json:"color"`

	// Placements are removed together with the object.
	Placements []Placement `json:"-" gorm:"foreignKey:ObjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RoomObject
func (RoomObject) TableName() string {
	return "objects"
}
