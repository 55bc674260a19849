package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"course-cluster-backend/internal/api/handlers"
	apperrors "course-cluster-backend/internal/errors"
	"course-cluster-backend/internal/mocks"
	"course-cluster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ObjectHandlerTestSuite defines the test suite for ObjectHandler
type ObjectHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockObjectSv *mocks.MockObjectServiceInterface
	router       *gin.Engine
}

func (suite *ObjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockObjectSv = mocks.NewMockObjectServiceInterface(suite.ctrl)
	handler := handlers.NewObjectHandler(suite.mockObjectSv)

	suite.router = gin.New()
	suite.router.GET("/api/objects", handler.ListObjects)
	suite.router.GET("/api/objects/:id", handler.GetObject)
	suite.router.POST("/api/objects", handler.CreateObject)
	suite.router.PUT("/api/objects/:id", handler.UpdateObject)
	suite.router.DELETE("/api/objects/:id", handler.DeleteObject)
}

func (suite *ObjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ObjectHandlerTestSuite) TestListObjects_NullColor() {
	suite.mockObjectSv.EXPECT().ListObjects().Return([]service.ObjectResponse{
		{ID: 1, Name: "Desk", Width: 4, Height: 2},
	}, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/objects", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[{"objectId":1,"name":"Desk","width":4,"height":2,"color":null}]`, w.Body.String())
}

func (suite *ObjectHandlerTestSuite) TestGetObject_Success() {
	color := "#D2691E"
	suite.mockObjectSv.EXPECT().GetObject(uint(2)).Return(&service.ObjectResponse{ID: 2, Name: "Desk", Width: 4, Height: 2, Color: &color}, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/objects/2", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.ObjectResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "#D2691E", *got.Color)
}

func (suite *ObjectHandlerTestSuite) TestGetObject_NotFound() {
	suite.mockObjectSv.EXPECT().GetObject(uint(2)).Return(nil, apperrors.ErrObjectNotFound)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/objects/2", nil))

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ObjectHandlerTestSuite) TestCreateObject_Success() {
	suite.mockObjectSv.EXPECT().CreateObject(gomock.Any()).DoAndReturn(
		func(req *service.CreateObjectRequest) (*service.ObjectResponse, error) {
			assert.Equal(suite.T(), "Desk", req.Name)
			assert.Equal(suite.T(), "#D2691E", *req.Color)
			return &service.ObjectResponse{ID: 5, Name: req.Name, Width: req.Width, Height: req.Height, Color: req.Color}, nil
		})

	body := `{"name":"Desk","width":4,"height":2,"color":"#D2691E"}`
	req := httptest.NewRequest(http.MethodPost, "/api/objects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.JSONEq(suite.T(), `{"objectId":5,"name":"Desk","width":4,"height":2,"color":"#D2691E"}`, w.Body.String())
}

func (suite *ObjectHandlerTestSuite) TestUpdateObject_OmittedColorPassedAsNil() {
	suite.mockObjectSv.EXPECT().UpdateObject(uint(5), gomock.Any()).DoAndReturn(
		func(id uint, req *service.UpdateObjectRequest) (*service.ObjectResponse, error) {
			assert.Nil(suite.T(), req.Color)
			return &service.ObjectResponse{ID: id, Name: req.Name, Width: req.Width, Height: req.Height}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/objects/5", strings.NewReader(`{"name":"Desk","width":4,"height":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"color":null`)
}

func (suite *ObjectHandlerTestSuite) TestUpdateObject_NotFound() {
	suite.mockObjectSv.EXPECT().UpdateObject(uint(5), gomock.Any()).Return(nil, apperrors.ErrObjectNotFound)

	req := httptest.NewRequest(http.MethodPut, "/api/objects/5", strings.NewReader(`{"name":"Desk","width":4,"height":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ObjectHandlerTestSuite) TestDeleteObject_InvalidID() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/objects/desk", nil))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ObjectHandlerTestSuite) TestDeleteObject_NoContent() {
	suite.mockObjectSv.EXPECT().DeleteObject(uint(5)).Return(nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/objects/5", nil))

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestObjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ObjectHandlerTestSuite))
}
