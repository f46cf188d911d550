package dto

type CreateHomeVisitRequest struct {
	ChildID FlexibleID `json:"childId" binding:"required"`
	// CoachID defaults to the caller.
	CoachID      FlexibleID `json:"coachId"`
	VisitDate    string     `json:"visitDate" binding:"required"`
	VisitType    *string    `json:"visitType" validate:"omitempty,oneof=baseline follow_up emergency"`
	Purpose      *string    `json:"purpose"`
	Observations *string    `json:"observations"`
	ActionItems  *string    `json:"actionItems"`
}

// UpdateHomeVisitRequest changes only the fields that are present. An empty string clears a text field.
type UpdateHomeVisitRequest struct {
	VisitDate    *string `json:"visitDate"`
	VisitType    *string `json:"visitType" validate:"omitempty,oneof=baseline follow_up emergency"`
	Purpose      *string `json:"purpose"`
	Observations *string `json:"observations"`
	ActionItems  *string `json:"actionItems"`
}

type HomeVisitFilter struct {
	ChildID   uint   `form:"childId"`
	CoachID   uint   `form:"coachId"`
	VisitType string `form:"visitType"`
	PageQuery
}
