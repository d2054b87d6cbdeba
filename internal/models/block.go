package models

import "time"

type Block struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index:idx_blocks_range;not null" json:"professional_id"`

	StartTime time.Time `gorm:"index:idx_blocks_range;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Reason    string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
