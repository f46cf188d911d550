package models

import "time"

// Attendance is the present/absent mark of one child in one session.
type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;uniqueIndex:idx_attendance_session_child" json:"sessionId"`
	ChildID   uint      `gorm:"not null;uniqueIndex:idx_attendance_session_child;index" json:"childId"`
	Present   bool      `gorm:"not null" json:"present"`
	Notes     *string   `json:"notes"`
	Child     *Child    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"child,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
