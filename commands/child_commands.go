package commands

import (
	"context"

	"gorm.io/gorm"

	"yultimate/models"
)

// CreateChildCommand inserts one child.
type CreateChildCommand struct {
	db    *gorm.DB
	child *models.Child
}

func NewCreateChildCommand(db *gorm.DB, child *models.Child) *CreateChildCommand {
	return &CreateChildCommand{db: db, child: child}
}

func (c *CreateChildCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Create(c.child).Error
}
