package commands

import (
	"context"

	"gorm.io/gorm"

	apperrors "yultimate/errors"
	"yultimate/models"
)

// CreateAssessmentCommand stores an assessment for an existing child.
type CreateAssessmentCommand struct {
	db         *gorm.DB
	assessment *models.Assessment
}

func NewCreateAssessmentCommand(db *gorm.DB, assessment *models.Assessment) *CreateAssessmentCommand {
	return &CreateAssessmentCommand{db: db, assessment: assessment}
}

func (c *CreateAssessmentCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireChild(tx, c.assessment.ChildID); err != nil {
			return err
		}
		if err := tx.Create(c.assessment).Error; err != nil {
			return apperrors.Database("failed to create assessment", err)
		}
		return nil
	})
}

// UpdateAssessmentCommand applies a partial update to one assessment.
type UpdateAssessmentCommand struct {
	db      *gorm.DB
	id      uint
	changes map[string]interface{}

	Result models.Assessment
}

func NewUpdateAssessmentCommand(db *gorm.DB, id uint, changes map[string]interface{}) *UpdateAssessmentCommand {
	return &UpdateAssessmentCommand{db: db, id: id, changes: changes}
}

func (c *UpdateAssessmentCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := loadLocked(tx, &c.Result, c.id, apperrors.ErrAssessmentNotFound, "assessment"); err != nil {
			return err
		}
		if len(c.changes) == 0 {
			return nil
		}
		if err := tx.Model(&c.Result).Updates(c.changes).Error; err != nil {
			return apperrors.Database("failed to update assessment", err)
		}
		if err := tx.First(&c.Result, c.id).Error; err != nil {
			return apperrors.Database("failed to reload assessment", err)
		}
		return nil
	})
}
