package models

import "time"

// Session is a single attendance-taking event at one site on one date.
type Session struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	Date       time.Time    `gorm:"not null;index" json:"date"`
	SiteID     uint         `gorm:"not null;index" json:"siteId"`
	Site       *Site        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"site,omitempty"`
	Notes      *string      `json:"notes"`
	Attendance []Attendance `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE;" json:"attendance,omitempty"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
