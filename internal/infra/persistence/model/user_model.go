// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. IDs are generated application-side.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Profile *ProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders  []OrderModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the UUID primary key when the caller has not.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ProfileModel mirrors the 'profiles' table. UserID is unique, enforcing the
// 1:1 relationship with users. Optional columns are pointers so a nil value
// round-trips as SQL NULL.
type ProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FullName       *string   `gorm:"type:varchar(255)"`
	Address        *string   `gorm:"type:text"`
	GPSLocation    *string   `gorm:"type:varchar(255);column:gps_location"`
	PhoneNumber    *string   `gorm:"type:varchar(50)"`
	Birthday       *string   `gorm:"type:varchar(50)"`
	Gender         *string   `gorm:"type:varchar(20)"`
	ReferralSource *string   `gorm:"type:varchar(100)"`
	ReferralID     string    `gorm:"type:varchar(50)"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// BeforeCreate assigns the UUID primary key when the caller has not.
func (m *ProfileModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
