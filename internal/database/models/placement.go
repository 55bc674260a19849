package models

// Placement positions one RoomObject inside a Room. RoomID and ObjectID are fixed at creation.
type Placement struct {
	BaseModel
	RoomID   uint    `json:"room_id" gorm:"not null;index"`
	ObjectID uint    `json:"object_id" gorm:"not null;index"`
	X        float64 `json:"x" gorm:"not null"`
	Y        float64 `json:"y" gorm:"not null"`
	Rotation float64 `json:"rotation" gorm:"not null"`
}

// TableName returns the table name for Placement
func (Placement) TableName() string {
	return "placements"
}

// PlacementDetail is a placement joined with the current state of its catalog object.
type PlacementDetail struct {
	PlacementID  uint
	RoomID       uint
	ObjectID     uint
	ObjectName   *string
	ObjectWidth  *float64
	ObjectHeight *float64
	ObjectColor  *string
	X            float64
	Y            float64
	Rotation     float64
}
