package commands

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "yultimate/errors"
	"yultimate/models"
)

// forUpdate adds a row lock where the dialect supports one. SQLite serialises writers already.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// loadLocked loads the row with id into dest, mapping a miss to notFound.
func loadLocked(tx *gorm.DB, dest interface{}, id uint, notFound error, what string) error {
	if err := forUpdate(tx).First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return apperrors.Database("failed to load "+what, err)
	}
	return nil
}

func requireChild(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&models.Child{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return apperrors.Database("failed to check child", err)
	}
	if n == 0 {
		return apperrors.Validation(fmt.Sprintf("Child %d does not exist", id))
	}
	return nil
}

func requireUser(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return apperrors.Database("failed to check coach", err)
	}
	if n == 0 {
		return apperrors.Validation(fmt.Sprintf("Coach %d does not exist", id))
	}
	return nil
}
