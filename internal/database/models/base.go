package models

import (
	"time"
)

// BaseModel provides the autoincrement primary key and audit timestamps shared by all tables
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
