package models

import "time"

type UserType string

const (
	UserTypeClient       UserType = "client"
	UserTypeProfessional UserType = "professional"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Phone        string   `gorm:"size:20" json:"phone"`
	Type         UserType `gorm:"size:20;not null;default:'client'" json:"type"`
	Active       bool     `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
