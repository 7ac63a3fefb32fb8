package models

import "time"

// Center is an organizational unit users and attendance records belong to.
// Centers are never hard-deleted; IsActive=false marks them retired while
// historical references stay valid.
type Center struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:120;not null"`
	Address      string `json:"address" gorm:"size:255;not null"`
	City         string `json:"city" gorm:"size:80;not null"`
	State        string `json:"state" gorm:"size:80;not null"`
	Pincode      string `json:"pincode" gorm:"size:10;not null"`
	ContactEmail string `json:"contact_email" gorm:"size:120;not null"`
	ContactPhone string `json:"contact_phone" gorm:"size:20;not null"`
	IsActive     bool   `json:"is_active" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
