package routes_test

import (
	"encoding/json"
	"strings"
	"testing"

	_ "course-cluster-backend/docs"
	"course-cluster-backend/internal/api/routes"
	"course-cluster-backend/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return routes.SetupRoutes(db, &config.Config{AllowedOrigins: []string{"*"}})
}

// swaggerPath turns a gin route into the path key used in the OpenAPI document
func swaggerPath(route string) string {
	route = strings.TrimPrefix(route, "/api")
	if len(route) > 1 {
		route = strings.TrimSuffix(route, "/")
	}
	parts := strings.Split(route, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, ":") {
			parts[i] = "{" + strings.TrimPrefix(p, ":") + "}"
		}
	}
	return strings.Join(parts, "/")
}

func TestSwaggerDocumentCoversRoutes(t *testing.T) {
	router := newRouter(t)

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		BasePath string                            `json:"basePath"`
		Paths    map[string]map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	documented := 0
	for _, r := range router.Routes() {
		if !strings.HasPrefix(r.Path, "/api") && !strings.HasPrefix(r.Path, "/health") {
			continue
		}
		path := swaggerPath(r.Path)
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "route %s %s has no document entry %s", r.Method, r.Path, path) {
			continue
		}
		_, ok = ops[strings.ToLower(r.Method)]
		assert.True(t, ok, "route %s %s is not documented", r.Method, r.Path)
		documented++
	}
	assert.NotZero(t, documented)
}

func TestSetupRoutes_MetricsDisabled(t *testing.T) {
	router := newRouter(t)

	for _, r := range router.Routes() {
		assert.NotEqual(t, "/metrics", r.Path)
	}
}
