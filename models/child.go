package models

import "time"

type Child struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FirstName   string     `gorm:"not null" json:"firstName"`
	LastName    string     `gorm:"not null;index" json:"lastName"`
	DateOfBirth *time.Time `gorm:"type:date" json:"dateOfBirth"`
	SiteID      uint       `gorm:"not null;index" json:"siteId"`
	Site        *Site      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"site,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
