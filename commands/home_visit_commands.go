package commands

import (
	"context"

	"gorm.io/gorm"

	apperrors "yultimate/errors"
	"yultimate/models"
)

func preloadVisit(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Child").Preload("Coach")
}

// CreateHomeVisitCommand stores a visit after checking its child and coach.
type CreateHomeVisitCommand struct {
	db    *gorm.DB
	visit *models.HomeVisit
}

func NewCreateHomeVisitCommand(db *gorm.DB, visit *models.HomeVisit) *CreateHomeVisitCommand {
	return &CreateHomeVisitCommand{db: db, visit: visit}
}

func (c *CreateHomeVisitCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireChild(tx, c.visit.ChildID); err != nil {
			return err
		}
		if err := requireUser(tx, c.visit.CoachID); err != nil {
			return err
		}
		if err := tx.Create(c.visit).Error; err != nil {
			return apperrors.Database("failed to create home visit", err)
		}
		if err := preloadVisit(tx).First(c.visit, c.visit.ID).Error; err != nil {
			return apperrors.Database("failed to reload home visit", err)
		}
		return nil
	})
}

// UpdateHomeVisitCommand applies changes to one visit. Authorize runs against the stored row
// before anything is written.
type UpdateHomeVisitCommand struct {
	db        *gorm.DB
	id        uint
	changes   map[string]interface{}
	authorize func(*models.HomeVisit) error

	Result models.HomeVisit
}

func NewUpdateHomeVisitCommand(db *gorm.DB, id uint, changes map[string]interface{}, authorize func(*models.HomeVisit) error) *UpdateHomeVisitCommand {
	return &UpdateHomeVisitCommand{db: db, id: id, changes: changes, authorize: authorize}
}

func (c *UpdateHomeVisitCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var visit models.HomeVisit
		if err := loadLocked(tx, &visit, c.id, apperrors.ErrHomeVisitNotFound, "home visit"); err != nil {
			return err
		}
		if c.authorize != nil {
			if err := c.authorize(&visit); err != nil {
				return err
			}
		}
		if len(c.changes) > 0 {
			if err := tx.Model(&visit).Updates(c.changes).Error; err != nil {
				return apperrors.Database("failed to update home visit", err)
			}
		}
		if err := preloadVisit(tx).First(&c.Result, c.id).Error; err != nil {
			return apperrors.Database("failed to reload home visit", err)
		}
		return nil
	})
}

// DeleteCommand removes one row of model by id, mapping a miss to notFound.
type DeleteCommand struct {
	db       *gorm.DB
	model    interface{}
	id       uint
	notFound error
}

func NewDeleteCommand(db *gorm.DB, model interface{}, id uint, notFound error) *DeleteCommand {
	return &DeleteCommand{db: db, model: model, id: id, notFound: notFound}
}

func (c *DeleteCommand) Execute(ctx context.Context) error {
	res := c.db.WithContext(ctx).Delete(c.model, c.id)
	if res.Error != nil {
		return apperrors.Database("failed to delete record", res.Error)
	}
	if res.RowsAffected == 0 {
		return c.notFound
	}
	return nil
}
