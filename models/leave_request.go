package models

import "time"

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Decision statuses a reviewer may set; pending is never assignable.
func (s LeaveStatus) Decision() bool {
	return s == LeaveApproved || s == LeaveRejected
}

type LeaveRequest struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"user_id" gorm:"index;not null"`
	StartDate string      `json:"start_date" gorm:"size:10;not null"` // YYYY-MM-DD
	EndDate   string      `json:"end_date" gorm:"size:10;not null"`   // YYYY-MM-DD
	Reason    string      `json:"reason" gorm:"type:text;not null"`
	Status    LeaveStatus `json:"status" gorm:"size:20;not null;default:pending"`

	DecidedBy     *uint      `json:"decided_by,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	DecisionNotes string     `json:"decision_notes,omitempty" gorm:"type:text"`

	User     *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Approver *User `json:"approver,omitempty" gorm:"foreignKey:DecidedBy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
