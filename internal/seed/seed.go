package seed

import (
	_ "embed"
	"fmt"
	"os"

	"course-cluster-backend/internal/database/models"
	apperrors "course-cluster-backend/internal/errors"
	"course-cluster-backend/internal/logger"
	"course-cluster-backend/internal/repository"

	"gopkg.in/yaml.v3"
)

//go:embed default_objects.yaml
var defaultObjectsYAML []byte

// ObjectDefinition is one catalog entry as written in a seed file
type ObjectDefinition struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  *string `yaml:"color"`
}

type catalogFile struct {
	Objects []ObjectDefinition `yaml:"objects"`
}

// DefaultObjects returns the built-in furniture catalog in insertion order
func DefaultObjects() ([]ObjectDefinition, error) {
	return parseCatalog(defaultObjectsYAML)
}

// LoadObjectsFile reads a catalog from a YAML file with the same layout as the built-in one
func LoadObjectsFile(path string) ([]ObjectDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) ([]ObjectDefinition, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	if len(file.Objects) == 0 {
		return nil, apperrors.ErrSeedCatalogEmpty
	}
	for i, def := range file.Objects {
		if def.Name == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("objects[%d].name", i), "is required")
		}
		if def.Width <= 0 || def.Height <= 0 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("objects[%d]", i), "width and height must be positive")
		}
	}
	return file.Objects, nil
}

// Loader bootstraps the object catalog on an empty database
type Loader struct {
	repo    repository.ObjectRepositoryInterface
	objects []ObjectDefinition
}

// NewLoader creates a Loader that inserts the given definitions
func NewLoader(repo repository.ObjectRepositoryInterface, objects []ObjectDefinition) *Loader {
	return &Loader{
		repo:    repo,
		objects: objects,
	}
}

// Run inserts the catalog when no objects exist yet and returns how many were inserted.
// A catalog that already has rows is left untouched.
func (l *Loader) Run() (int, error) {
	log := logger.New()

	total, err := l.repo.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count objects: %w", err)
	}
	if total > 0 {
		log.WithField("existing", total).Debug("object catalog already populated, skipping seed")
		return 0, nil
	}

	inserted := 0
	for _, def := range l.objects {
		object := &models.RoomObject{
			Name:   def.Name,
			Width:  def.Width,
			Height: def.Height,
			Color:  def.Color,
		}
		if err := l.repo.Create(object); err != nil {
			return inserted, fmt.Errorf("failed to seed object %q: %w", def.Name, err)
		}
		inserted++
	}

	log.WithField("count", inserted).Info("seeded default objects")
	return inserted, nil
}
