package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"course-cluster-backend/internal/config"
	"course-cluster-backend/internal/database"
	"course-cluster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RoomData struct {
	Name   string  `yaml:"name"`
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
}

type ObjectData struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  *string `yaml:"color,omitempty"`
}

// PlacementData references its room and object by name
type PlacementData struct {
	RoomName   string   `yaml:"room_name"`
	ObjectName string   `yaml:"object_name"`
	X          float64  `yaml:"x"`
	Y          float64  `yaml:"y"`
	Rotation   *float64 `yaml:"rotation,omitempty"`
}

// File structures
type RoomsFile struct {
	Rooms []RoomData `yaml:"rooms"`
}

type ObjectsFile struct {
	Objects []ObjectData `yaml:"objects"`
}

type PlacementsFile struct {
	Placements []PlacementData `yaml:"placements"`
}

func main() {
	log.Println("🚀 Loading initial layout data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var rooms RoomsFile
	if err := walkYAML(dataDir, "rooms", func(data []byte) error {
		var file RoomsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		rooms.Rooms = append(rooms.Rooms, file.Rooms...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	var objects ObjectsFile
	if err := walkYAML(dataDir, "objects", func(data []byte) error {
		var file ObjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		objects.Objects = append(objects.Objects, file.Objects...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load objects: %w", err)
	}

	var placements PlacementsFile
	if err := walkYAML(dataDir, "placements", func(data []byte) error {
		var file PlacementsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		placements.Placements = append(placements.Placements, file.Placements...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load placements: %w", err)
	}

	// Create rooms first
	roomMap := make(map[string]*models.Room)
	roomCreated := 0
	for _, roomData := range rooms.Rooms {
		room, created, err := createRoom(db, roomData)
		if err != nil {
			return fmt.Errorf("failed to create room %s: %w", roomData.Name, err)
		}
		roomMap[roomData.Name] = room
		if created {
			roomCreated++
		}
	}
	log.Printf("📋 Rooms: %d created, %d total", roomCreated, len(rooms.Rooms))

	// Create catalog objects
	objectMap := make(map[string]*models.RoomObject)
	objectCreated := 0
	for _, objectData := range objects.Objects {
		object, created, err := createObject(db, objectData)
		if err != nil {
			return fmt.Errorf("failed to create object %s: %w", objectData.Name, err)
		}
		objectMap[objectData.Name] = object
		if created {
			objectCreated++
		}
	}
	log.Printf("📋 Objects: %d created, %d total", objectCreated, len(objects.Objects))

	// Create placements
	placementCreated := 0
	for _, placementData := range placements.Placements {
		created, err := createPlacement(db, placementData, roomMap, objectMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to place %s in %s: %v", placementData.ObjectName, placementData.RoomName, err)
			continue
		}
		if created {
			placementCreated++
		}
	}
	log.Printf("📋 Placements: %d created, %d total", placementCreated, len(placements.Placements))

	return nil
}

// walkYAML calls fn with the contents of every .yaml file under dataDir whose path contains kind
func walkYAML(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return fn(data)
		}
		return nil
	})
}

func createRoom(db *gorm.DB, roomData RoomData) (*models.Room, bool, error) {
	var room models.Room
	err := db.Where("name = ?", roomData.Name).First(&room).Error
	if err == nil {
		return &room, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query room: %w", err)
	}

	room = models.Room{
		Name:   roomData.Name,
		Length: roomData.Length,
		Width:  roomData.Width,
	}
	if err := db.Create(&room).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, true, nil
}

func createObject(db *gorm.DB, objectData ObjectData) (*models.RoomObject, bool, error) {
	var object models.RoomObject
	err := db.Where("name = ?", objectData.Name).First(&object).Error
	if err == nil {
		return &object, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query object: %w", err)
	}

	object = models.RoomObject{
		Name:   objectData.Name,
		Width:  objectData.Width,
		Height: objectData.Height,
		Color:  objectData.Color,
	}
	if err := db.Create(&object).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create object: %w", err)
	}
	return &object, true, nil
}

// createPlacement skips a placement already present at the same spot in the same room
func createPlacement(db *gorm.DB, placementData PlacementData, roomMap map[string]*models.Room, objectMap map[string]*models.RoomObject) (bool, error) {
	room, ok := roomMap[placementData.RoomName]
	if !ok {
		return false, fmt.Errorf("room %q not found", placementData.RoomName)
	}
	object, ok := objectMap[placementData.ObjectName]
	if !ok {
		return false, fmt.Errorf("object %q not found", placementData.ObjectName)
	}

	var existing int64
	if err := db.Model(&models.Placement{}).
		Where("room_id = ? AND object_id = ? AND x = ? AND y = ?", room.ID, object.ID, placementData.X, placementData.Y).
		Count(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to query placement: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	placement := models.Placement{
		RoomID:   room.ID,
		ObjectID: object.ID,
		X:        placementData.X,
		Y:        placementData.Y,
	}
	if placementData.Rotation != nil {
		placement.Rotation = *placementData.Rotation
	}
	if err := db.Create(&placement).Error; err != nil {
		return false, fmt.Errorf("failed to create placement: %w", err)
	}
	return true, nil
}
