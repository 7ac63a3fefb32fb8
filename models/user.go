package models

import "time"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:120;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	Role     Role   `json:"role" gorm:"size:20;not null;default:teacher"`
	CenterID uint   `json:"center_id" gorm:"index;not null"`

	Center *Center `json:"center,omitempty" gorm:"foreignKey:CenterID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
