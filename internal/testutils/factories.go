package testutils

import (
	"course-cluster-backend/internal/database/models"
)

// RoomFactory provides methods to create test Room data
type RoomFactory struct{}

// NewRoomFactory creates a new RoomFactory
func NewRoomFactory() *RoomFactory {
	return &RoomFactory{}
}

// Create creates a test Room with default values
func (f *RoomFactory) Create() *models.Room {
	return &models.Room{
		Name:   "Dorm A",
		Length: 12,
		Width:  10,
	}
}

// WithName sets a custom name for the room
func (f *RoomFactory) WithName(name string) *models.Room {
	room := f.Create()
	room.Name = name
	return room
}

// WithDimensions sets custom length and width for the room
func (f *RoomFactory) WithDimensions(length, width float64) *models.Room {
	room := f.Create()
	room.Length = length
	room.Width = width
	return room
}

// ObjectFactory provides methods to create test RoomObject data
type ObjectFactory struct{}

// NewObjectFactory creates a new ObjectFactory
func NewObjectFactory() *ObjectFactory {
	return &ObjectFactory{}
}

// Create creates a test RoomObject with default values
func (f *ObjectFactory) Create() *models.RoomObject {
	color := "#D2691E"
	return &models.RoomObject{
		Name:   "Desk",
		Width:  4,
		Height: 2,
		Color:  &color,
	}
}

// WithName sets a custom name for the object
func (f *ObjectFactory) WithName(name string) *models.RoomObject {
	object := f.Create()
	object.Name = name
	return object
}

// WithoutColor creates an object with no display color
func (f *ObjectFactory) WithoutColor() *models.RoomObject {
	object := f.Create()
	object.Color = nil
	return object
}

// PlacementFactory provides methods to create test Placement data
type PlacementFactory struct{}

// NewPlacementFactory creates a new PlacementFactory
func NewPlacementFactory() *PlacementFactory {
	return &PlacementFactory{}
}

// Create creates a test Placement at the room origin
func (f *PlacementFactory) Create(roomID, objectID uint) *models.Placement {
	return &models.Placement{
		RoomID:   roomID,
		ObjectID: objectID,
		X:        0,
		Y:        0,
		Rotation: 0,
	}
}

// At creates a test Placement at the given position and rotation
func (f *PlacementFactory) At(roomID, objectID uint, x, y, rotation float64) *models.Placement {
	placement := f.Create(roomID, objectID)
	placement.X = x
	placement.Y = y
	placement.Rotation = rotation
	return placement
}

// FactorySet provides access to all factories
type FactorySet struct {
	Room      *RoomFactory
	Object    *ObjectFactory
	Placement *PlacementFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Room:      NewRoomFactory(),
		Object:    NewObjectFactory(),
		Placement: NewPlacementFactory(),
	}
}

// CreateFurnishedRoom builds a room, an object and one placement of that object in the room.
// IDs are left unset; callers persist the room and object first, then wire the placement.
func (fs *FactorySet) CreateFurnishedRoom() (*models.Room, *models.RoomObject, *models.Placement) {
	room := fs.Room.Create()
	object := fs.Object.Create()
	placement := fs.Placement.At(0, 0, 1, 2, 0)
	return room, object, placement
}
