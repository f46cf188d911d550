package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"yultimate/dto"
	apperrors "yultimate/errors"
	"yultimate/models"
	"yultimate/utils"
)

// Command is a unit of work run against the database.
type Command interface {
	Execute(ctx context.Context) error
}

// ReplaceAttendanceCommand swaps the full attendance set of one session inside a transaction.
type ReplaceAttendanceCommand struct {
	db        *gorm.DB
	sessionID uint
	entries   []dto.AttendanceEntry

	Result []models.Attendance
}

func NewReplaceAttendanceCommand(db *gorm.DB, sessionID uint, entries []dto.AttendanceEntry) *ReplaceAttendanceCommand {
	return &ReplaceAttendanceCommand{
		db:        db,
		sessionID: sessionID,
		entries:   entries,
	}
}

func (c *ReplaceAttendanceCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := forUpdate(tx).Select("id").First(&session, c.sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSessionNotFound
			}
			return apperrors.Database("failed to load session", err)
		}

		if err := c.checkChildren(tx); err != nil {
			return err
		}

		if err := tx.Where("session_id = ?", c.sessionID).Delete(&models.Attendance{}).Error; err != nil {
			return apperrors.Database("failed to clear attendance", err)
		}

		records := make([]models.Attendance, 0, len(c.entries))
		for _, e := range c.entries {
			records = append(records, models.Attendance{
				SessionID: c.sessionID,
				ChildID:   e.ChildID.Uint(),
				Present:   e.Present.Bool(),
				Notes:     utils.TrimToNil(e.Notes),
			})
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return apperrors.Database("failed to insert attendance", err)
			}
		}

		saved := []models.Attendance{}
		if err := tx.Preload("Child").
			Where("session_id = ?", c.sessionID).
			Order("id").
			Find(&saved).Error; err != nil {
			return apperrors.Database("failed to reload attendance", err)
		}
		c.Result = saved
		return nil
	})
}

func (c *ReplaceAttendanceCommand) checkChildren(tx *gorm.DB) error {
	if len(c.entries) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(c.entries))
	for _, e := range c.entries {
		ids = append(ids, e.ChildID.Uint())
	}

	var found []uint
	if err := tx.Model(&models.Child{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return apperrors.Database("failed to check children", err)
	}
	known := make(map[uint]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var unknown []string
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, fmt.Sprint(id))
		}
	}
	if len(unknown) > 0 {
		return apperrors.Validation("Unknown child ids: " + strings.Join(unknown, ", "))
	}
	return nil
}
