package models

import "time"

// Assessment is one Life Skills Assessment Scale (LSAS) scoring of a child.
// Scores are optional and range from 0 to 10.
type Assessment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	ChildID             uint      `gorm:"not null;index" json:"childId"`
	Child               *Child    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"child,omitempty"`
	AssessmentType      string    `gorm:"size:32;not null;index" json:"assessmentType"`
	AssessmentDate      time.Time `gorm:"type:date;not null;index" json:"assessmentDate"`
	OverallScore        *float64  `json:"overallScore"`
	LeadershipScore     *float64  `json:"leadershipScore"`
	TeamworkScore       *float64  `json:"teamworkScore"`
	CommunicationScore  *float64  `json:"communicationScore"`
	ConfidenceScore     *float64  `json:"confidenceScore"`
	ResilienceScore     *float64  `json:"resilienceScore"`
	AssessorNotes       *string   `gorm:"type:text" json:"assessorNotes"`
	Strengths           *string   `gorm:"type:text" json:"strengths"`
	AreasForImprovement *string   `gorm:"type:text" json:"areasForImprovement"`
	AssessedBy          *string   `json:"assessedBy"`
	RecordedByID        uint      `gorm:"not null;index" json:"recordedById"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
