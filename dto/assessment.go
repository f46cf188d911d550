package dto

import "yultimate/models"

// LSASScores are the optional skill scores of an assessment.
type LSASScores struct {
	OverallScore       *float64 `json:"overallScore" validate:"omitempty,gte=0,lte=10"`
	LeadershipScore    *float64 `json:"leadershipScore" validate:"omitempty,gte=0,lte=10"`
	TeamworkScore      *float64 `json:"teamworkScore" validate:"omitempty,gte=0,lte=10"`
	CommunicationScore *float64 `json:"communicationScore" validate:"omitempty,gte=0,lte=10"`
	ConfidenceScore    *float64 `json:"confidenceScore" validate:"omitempty,gte=0,lte=10"`
	ResilienceScore    *float64 `json:"resilienceScore" validate:"omitempty,gte=0,lte=10"`
}

type LSASNotes struct {
	AssessorNotes       *string `json:"assessorNotes"`
	Strengths           *string `json:"strengths"`
	AreasForImprovement *string `json:"areasForImprovement"`
	AssessedBy          *string `json:"assessedBy"`
}

type CreateAssessmentRequest struct {
	ChildID        FlexibleID `json:"childId" binding:"required"`
	AssessmentType string     `json:"assessmentType" binding:"required" validate:"omitempty,oneof=baseline mid_term follow_up endline"`
	AssessmentDate string     `json:"assessmentDate" binding:"required"`
	LSASScores
	LSASNotes
}

// UpdateAssessmentRequest changes only the fields that are present.
type UpdateAssessmentRequest struct {
	AssessmentType *string `json:"assessmentType" validate:"omitempty,oneof=baseline mid_term follow_up endline"`
	AssessmentDate *string `json:"assessmentDate"`
	LSASScores
	LSASNotes
}

type AssessmentFilter struct {
	ChildID        uint   `form:"childId"`
	AssessmentType string `form:"assessmentType"`
	PageQuery
}

// AssessmentProgress compares a child's latest assessment with the baseline.
type AssessmentProgress struct {
	ChildID          uint                `json:"childId"`
	TotalAssessments int                 `json:"totalAssessments"`
	Assessments      []models.Assessment `json:"assessments"`
	Progress         map[string]float64  `json:"progress"`
	BaselineDate     *string             `json:"baselineDate"`
	LatestDate       *string             `json:"latestDate"`
	Trend            string              `json:"trend,omitempty"`
}
