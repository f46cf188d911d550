package models

import "time"

// ImportLog records one CSV import run.
type ImportLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FileName   string    `json:"fileName"`
	Imported   int       `json:"imported"`
	Failed     int       `json:"failed"`
	ArchiveURL *string   `json:"archiveUrl"`
	UserID     uint      `gorm:"index" json:"userId"`
	User       *User     `gorm:"constraint:OnDelete:SET NULL;" json:"user,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
