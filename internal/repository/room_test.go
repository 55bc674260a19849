package repository

import (
	"errors"
	"testing"
	"time"

	"course-cluster-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var roomColumns = []string{"id", "created_at", "updated_at", "name", "length", "width"}

func TestRoomRepository_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(roomColumns).
		AddRow(1, now, now, "Dorm A", 12.0, 10.0).
		AddRow(2, now, now, "Dorm B", 14.5, 11.0)
	mock.ExpectQuery(`SELECT \* FROM "rooms" ORDER BY id ASC`).WillReturnRows(rows)

	rooms, err := repo.GetAll()

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, uint(1), rooms[0].ID)
	assert.Equal(t, "Dorm A", rooms[0].Name)
	assert.Equal(t, 14.5, rooms[1].Length)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(7, now, now, "Suite", 20.0, 15.0))

	room, err := repo.GetByID(7)

	require.NoError(t, err)
	assert.Equal(t, uint(7), room.ID)
	assert.Equal(t, "Suite", room.Name)
	assert.Equal(t, 20.0, room.Length)
	assert.Equal(t, 15.0, room.Width)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(roomColumns))

	room, err := repo.GetByID(99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, room)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectQuery(`INSERT INTO "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	room := &models.Room{Name: "Dorm A", Length: 12, Width: 10}
	err := repo.Create(room)

	require.NoError(t, err)
	assert.Equal(t, uint(5), room.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectExec(`UPDATE "rooms" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	room := &models.Room{BaseModel: models.BaseModel{ID: 3, CreatedAt: time.Now()}, Name: "Renamed", Length: 9, Width: 8}
	err := repo.Update(room)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_DeleteCascadesPlacements(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "placements" WHERE room_id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "rooms" WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_DeleteMissingRoomIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "placements"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "rooms"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(404))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_DeleteRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "placements"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "rooms"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Delete(3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
