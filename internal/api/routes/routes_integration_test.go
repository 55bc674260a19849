//go:build integration
// +build integration

package routes_test

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"course-cluster-backend/internal/api/routes"
	"course-cluster-backend/internal/service"
	"course-cluster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// LayoutAPITestSuite drives the full router against a real Postgres
type LayoutAPITestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	api  *testutils.HTTPTestSuite
}

func (s *LayoutAPITestSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	s.api = testutils.NewHTTPTestSuite(routes.SetupRoutes(s.base.DB, s.base.Config))
}

func (s *LayoutAPITestSuite) TearDownSuite() {
	s.base.TeardownTestSuite()
}

func (s *LayoutAPITestSuite) SetupTest() {
	s.base.SetupTest()
}

func (s *LayoutAPITestSuite) createRoom() service.RoomResponse {
	var room service.RoomResponse
	w := s.api.MakeRequest(http.MethodPost, "/api/rooms", `{"name":"Dorm A","length":12,"width":10}`)
	testutils.AssertJSONResponse(s.T(), w, http.StatusCreated, &room)
	return room
}

func (s *LayoutAPITestSuite) createDesk() service.ObjectResponse {
	var object service.ObjectResponse
	w := s.api.MakeRequest(http.MethodPost, "/api/objects", `{"name":"Desk","width":4,"height":2,"color":"#D2691E"}`)
	testutils.AssertJSONResponse(s.T(), w, http.StatusCreated, &object)
	return object
}

func (s *LayoutAPITestSuite) place(roomID, objectID uint) service.PlacementResponse {
	var placement service.PlacementResponse
	body := fmt.Sprintf(`{"roomId":%d,"objectId":%d,"x":1.0,"y":2.0}`, roomID, objectID)
	w := s.api.MakeRequest(http.MethodPost, "/api/placements", body)
	testutils.AssertJSONResponse(s.T(), w, http.StatusCreated, &placement)
	return placement
}

func (s *LayoutAPITestSuite) TestEndToEndLayout() {
	room := s.createRoom()
	s.NotZero(room.ID)
	s.Equal("Dorm A", room.Name)

	desk := s.createDesk()
	s.NotZero(desk.ID)

	placement := s.place(room.ID, desk.ID)
	s.Equal(room.ID, placement.RoomID)
	s.Equal(desk.ID, placement.ObjectID)
	s.Equal(0.0, placement.Rotation)
	s.Equal(1.0, placement.X)
	s.Equal(2.0, placement.Y)
	s.Equal("Desk", *placement.ObjectName)
	s.Equal(4.0, *placement.ObjectWidth)
	s.Equal(2.0, *placement.ObjectHeight)
	s.Equal("#D2691E", *placement.ObjectColor)

	var inRoom []service.PlacementResponse
	w := s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/placements/room/%d", room.ID), nil)
	testutils.AssertJSONResponse(s.T(), w, http.StatusOK, &inRoom)
	s.Len(inRoom, 1)
}

func (s *LayoutAPITestSuite) TestTrailingSlashRoutes() {
	s.createRoom()

	var rooms []service.RoomResponse
	w := s.api.MakeRequest(http.MethodGet, "/api/rooms/", nil)
	testutils.AssertJSONResponse(s.T(), w, http.StatusOK, &rooms)
	s.Len(rooms, 1)

	w = s.api.MakeRequest(http.MethodPost, "/api/objects/", `{"name":"Chair","width":1.5,"height":1.5}`)
	s.Equal(http.StatusCreated, w.Code)
}

func (s *LayoutAPITestSuite) TestCatalogEditShowsOnNextRead() {
	room := s.createRoom()
	desk := s.createDesk()
	placement := s.place(room.ID, desk.ID)

	w := s.api.MakeRequest(http.MethodPut, fmt.Sprintf("/api/objects/%d", desk.ID),
		`{"name":"Desk","width":4,"height":2,"color":"#000000"}`)
	s.Equal(http.StatusOK, w.Code)

	var fetched service.PlacementResponse
	w = s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/placements/%d", placement.PlacementID), nil)
	testutils.AssertJSONResponse(s.T(), w, http.StatusOK, &fetched)
	s.Equal("#000000", *fetched.ObjectColor)
}

func (s *LayoutAPITestSuite) TestUpdatePlacementRotation() {
	room := s.createRoom()
	desk := s.createDesk()
	placement := s.place(room.ID, desk.ID)
	url := fmt.Sprintf("/api/placements/%d", placement.PlacementID)

	var updated service.PlacementResponse
	w := s.api.MakeRequest(http.MethodPut, url, `{"x":5,"y":5,"rotation":90}`)
	testutils.AssertJSONResponse(s.T(), w, http.StatusOK, &updated)
	s.Equal(90.0, updated.Rotation)

	w = s.api.MakeRequest(http.MethodPut, url, `{"x":6,"y":6}`)
	testutils.AssertJSONResponse(s.T(), w, http.StatusOK, &updated)
	s.Equal(90.0, updated.Rotation)
	s.Equal(6.0, updated.X)
}

func (s *LayoutAPITestSuite) TestPlacementWithMissingReferences() {
	room := s.createRoom()

	w := s.api.MakeRequest(http.MethodPost, "/api/placements",
		fmt.Sprintf(`{"roomId":%d,"objectId":987654,"x":1,"y":1}`, room.ID))
	testutils.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "object not found")

	w = s.api.MakeRequest(http.MethodPost, "/api/placements", `{"roomId":987654,"objectId":1,"x":1,"y":1}`)
	testutils.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "room not found")
}

func (s *LayoutAPITestSuite) TestDeleteRoomCascades() {
	room := s.createRoom()
	desk := s.createDesk()
	placement := s.place(room.ID, desk.ID)

	w := s.api.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/rooms/%d", room.ID), nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/placements/%d", placement.PlacementID), nil)
	testutils.AssertErrorResponse(s.T(), w, http.StatusNotFound, "placement not found")

	// deleting again is still a success
	w = s.api.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/rooms/%d", room.ID), nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *LayoutAPITestSuite) TestDeleteObjectCascades() {
	room := s.createRoom()
	desk := s.createDesk()
	placement := s.place(room.ID, desk.ID)

	w := s.api.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/objects/%d", desk.ID), nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/placements/%d", placement.PlacementID), nil)
	testutils.AssertErrorResponse(s.T(), w, http.StatusNotFound, "placement not found")

	w = s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/placements/room/%d", room.ID), nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())

	w = s.api.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/objects/%d", desk.ID), nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *LayoutAPITestSuite) TestMetricsExposed() {
	s.api.MakeRequest(http.MethodGet, "/api/rooms", nil)

	w := s.api.MakeRequest(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "course_cluster_http_requests_total")
}

func TestLayoutAPITestSuite(t *testing.T) {
	suite.Run(t, new(LayoutAPITestSuite))
}
