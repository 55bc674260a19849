package models

// Room is a rectangular floor-plan area. Dimensions are in feet.
type Room struct {
	BaseModel
	Name   string  `json:"name" gorm:"not null"`
	Length float64 `json:"length" gorm:"not null"`
	Width  float64 `json:"width" gorm:"not null"`

	// Placements are removed together with the room.
	Placements []Placement `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Room
func (Room) TableName() string {
	return "rooms"
}
