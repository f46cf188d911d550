package models

import "time"

// HomeVisit records a coach's visit to a child's family.
type HomeVisit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ChildID      uint      `gorm:"not null;index" json:"childId"`
	Child        *Child    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"child,omitempty"`
	CoachID      uint      `gorm:"not null;index" json:"coachId"`
	Coach        *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"coach,omitempty"`
	VisitDate    time.Time `gorm:"type:date;not null;index" json:"visitDate"`
	VisitType    *string   `gorm:"size:32" json:"visitType"`
	Purpose      *string   `gorm:"type:text" json:"purpose"`
	Observations *string   `gorm:"type:text" json:"observations"`
	ActionItems  *string   `gorm:"type:text" json:"actionItems"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
