package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RoomServiceInterface defines the interface for room service
type RoomServiceInterface interface {
	ListRooms() ([]RoomResponse, error)
	GetRoom(id uint) (*RoomResponse, error)
	CreateRoom(req *CreateRoomRequest) (*RoomResponse, error)
	UpdateRoom(id uint, req *UpdateRoomRequest) (*RoomResponse, error)
	DeleteRoom(id uint) error
}

// ObjectServiceInterface defines the interface for the object catalog service
type ObjectServiceInterface interface {
	ListObjects() ([]ObjectResponse, error)
	GetObject(id uint) (*ObjectResponse, error)
	CreateObject(req *CreateObjectRequest) (*ObjectResponse, error)
	UpdateObject(id uint, req *UpdateObjectRequest) (*ObjectResponse, error)
	DeleteObject(id uint) error
}

// PlacementServiceInterface defines the interface for placement service
type PlacementServiceInterface interface {
	ListPlacements() ([]PlacementResponse, error)
	ListPlacementsByRoom(roomID uint) ([]PlacementResponse, error)
	GetPlacement(id uint) (*PlacementResponse, error)
	CreatePlacement(req *CreatePlacementRequest) (*PlacementResponse, error)
	UpdatePlacement(id uint, req *UpdatePlacementRequest) (*PlacementResponse, error)
	DeletePlacement(id uint) error
}
