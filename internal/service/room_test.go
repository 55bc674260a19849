package service_test

import (
	"errors"
	"testing"

	"course-cluster-backend/internal/database/models"
	apperrors "course-cluster-backend/internal/errors"
	"course-cluster-backend/internal/mocks"
	"course-cluster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type RoomServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRoomRepo *mocks.MockRoomRepositoryInterface
	roomService  *service.RoomService
}

func (suite *RoomServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRoomRepo = mocks.NewMockRoomRepositoryInterface(suite.ctrl)
	suite.roomService = service.NewRoomService(suite.mockRoomRepo, validator.New())
}

func (suite *RoomServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoomServiceTestSuite) TestListRooms_Success() {
	rooms := []models.Room{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Dorm A", Length: 12, Width: 10},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Dorm B", Length: 14, Width: 11},
	}
	suite.mockRoomRepo.EXPECT().GetAll().Return(rooms, nil)

	resp, err := suite.roomService.ListRooms()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), uint(1), resp[0].ID)
	assert.Equal(suite.T(), "Dorm B", resp[1].Name)
	assert.Equal(suite.T(), 11.0, resp[1].Width)
}

func (suite *RoomServiceTestSuite) TestListRooms_Empty() {
	suite.mockRoomRepo.EXPECT().GetAll().Return(nil, nil)

	resp, err := suite.roomService.ListRooms()

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Len(suite.T(), resp, 0)
}

func (suite *RoomServiceTestSuite) TestListRooms_RepositoryError() {
	suite.mockRoomRepo.EXPECT().GetAll().Return(nil, errors.New("db down"))

	resp, err := suite.roomService.ListRooms()

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to get rooms")
}

func (suite *RoomServiceTestSuite) TestGetRoom_Success() {
	room := &models.Room{BaseModel: models.BaseModel{ID: 3}, Name: "Dorm A", Length: 12, Width: 10}
	suite.mockRoomRepo.EXPECT().GetByID(uint(3)).Return(room, nil)

	resp, err := suite.roomService.GetRoom(3)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(3), resp.ID)
	assert.Equal(suite.T(), 12.0, resp.Length)
}

func (suite *RoomServiceTestSuite) TestGetRoom_NotFound() {
	suite.mockRoomRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.roomService.GetRoom(99)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoomNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *RoomServiceTestSuite) TestCreateRoom_Success() {
	suite.mockRoomRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(room *models.Room) error {
		assert.Equal(suite.T(), "Dorm A", room.Name)
		room.ID = 7
		return nil
	})

	resp, err := suite.roomService.CreateRoom(&service.CreateRoomRequest{Name: "Dorm A", Length: 12, Width: 10})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(7), resp.ID)
	assert.Equal(suite.T(), 12.0, resp.Length)
	assert.Equal(suite.T(), 10.0, resp.Width)
}

func (suite *RoomServiceTestSuite) TestCreateRoom_ValidationError() {
	testCases := []struct {
		name  string
		req   service.CreateRoomRequest
		field string
	}{
		{"missing name", service.CreateRoomRequest{Length: 12, Width: 10}, "Name"},
		{"zero length", service.CreateRoomRequest{Name: "Dorm A", Width: 10}, "Length"},
		{"negative width", service.CreateRoomRequest{Name: "Dorm A", Length: 12, Width: -1}, "Width"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := tc.req
			resp, err := suite.roomService.CreateRoom(&req)

			assert.Nil(suite.T(), resp)
			assert.True(suite.T(), apperrors.IsValidation(err))
			assert.Contains(suite.T(), err.Error(), tc.field)
		})
	}
}

func (suite *RoomServiceTestSuite) TestCreateRoom_RepositoryError() {
	suite.mockRoomRepo.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed"))

	resp, err := suite.roomService.CreateRoom(&service.CreateRoomRequest{Name: "Dorm A", Length: 12, Width: 10})

	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to create room")
}

func (suite *RoomServiceTestSuite) TestUpdateRoom_ReplacesAllFields() {
	existing := &models.Room{BaseModel: models.BaseModel{ID: 4}, Name: "Old", Length: 5, Width: 5}
	suite.mockRoomRepo.EXPECT().GetByID(uint(4)).Return(existing, nil)
	suite.mockRoomRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(room *models.Room) error {
		assert.Equal(suite.T(), uint(4), room.ID)
		assert.Equal(suite.T(), "Dorm A", room.Name)
		return nil
	})

	resp, err := suite.roomService.UpdateRoom(4, &service.UpdateRoomRequest{Name: "Dorm A", Length: 12, Width: 10})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(4), resp.ID)
	assert.Equal(suite.T(), "Dorm A", resp.Name)
	assert.Equal(suite.T(), 12.0, resp.Length)
	assert.Equal(suite.T(), 10.0, resp.Width)
}

func (suite *RoomServiceTestSuite) TestUpdateRoom_NotFound() {
	suite.mockRoomRepo.EXPECT().GetByID(uint(4)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.roomService.UpdateRoom(4, &service.UpdateRoomRequest{Name: "Dorm A", Length: 12, Width: 10})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoomNotFound)
}

func (suite *RoomServiceTestSuite) TestDeleteRoom_Success() {
	suite.mockRoomRepo.EXPECT().Delete(uint(5)).Return(nil)

	assert.NoError(suite.T(), suite.roomService.DeleteRoom(5))
}

func (suite *RoomServiceTestSuite) TestDeleteRoom_RepositoryError() {
	suite.mockRoomRepo.EXPECT().Delete(uint(5)).Return(errors.New("tx aborted"))

	err := suite.roomService.DeleteRoom(5)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "tx aborted")
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}
