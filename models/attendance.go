package models

import (
	"errors"
	"time"
)

// DateLayout is the calendar-day key format used by attendance and leave
// date fields.
const DateLayout = "2006-01-02"

type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "present"
	AttendanceAbsent    AttendanceStatus = "absent"
	AttendanceSundayOff AttendanceStatus = "sunday_off"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceSundayOff:
		return true
	}
	return false
}

// Attendance is a daily record, at most one per (user, date). Records are
// immutable once created.
type Attendance struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    uint             `json:"user_id" gorm:"not null;uniqueIndex:idx_attendance_user_date"`
	Date      string           `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_user_date"` // YYYY-MM-DD
	Status    AttendanceStatus `json:"status" gorm:"size:20;not null"`
	Latitude  *float64         `json:"latitude,omitempty"`
	Longitude *float64         `json:"longitude,omitempty"`
	Notes     string           `json:"notes,omitempty" gorm:"type:text"`
	CenterID  uint             `json:"center_id" gorm:"index;not null"`
	Timestamp time.Time        `json:"timestamp" gorm:"autoCreateTime"`

	Center *Center `json:"center,omitempty" gorm:"foreignKey:CenterID"`
}

var ErrGeolocationRequired = errors.New("geolocation required for marking present")

// ValidateMark checks the conditional geolocation rule: present needs both
// coordinates; other statuses ignore them.
func ValidateMark(status AttendanceStatus, lat, lng *float64) error {
	if status == AttendancePresent && (lat == nil || lng == nil) {
		return ErrGeolocationRequired
	}
	return nil
}
