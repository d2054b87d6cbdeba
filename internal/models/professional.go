package models

import "time"

type Professional struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	Speciality  string `gorm:"size:100" json:"speciality"`
	Description string `gorm:"type:text" json:"description"`
	PhotoURL    string `gorm:"size:255" json:"photo_url"`
	Address     string `gorm:"size:255" json:"address"`

	Timezone          string `gorm:"size:64" json:"timezone"`
	MinAdvanceMinutes int    `gorm:"default:0" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
