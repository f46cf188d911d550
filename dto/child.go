package dto

import "yultimate/models"

type CreateChildRequest struct {
	FirstName   string     `json:"firstName" binding:"required"`
	LastName    string     `json:"lastName" binding:"required"`
	DateOfBirth *string    `json:"dateOfBirth"`
	SiteID      FlexibleID `json:"siteId" binding:"required"`
}

// ImportRow is one decoded CSV record keyed by header name.
type ImportRow struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth"`
	SiteID      string `json:"siteId" validate:"required"`
}

type ImportRowError struct {
	Line  int               `json:"line"`
	Row   map[string]string `json:"row"`
	Error string            `json:"error"`
}

type ImportDetails struct {
	Imported []models.Child  `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}

type ImportResult struct {
	Message    string        `json:"message"`
	Imported   int           `json:"imported"`
	Errors     int           `json:"errors"`
	ImportID   uint          `json:"importId"`
	ArchiveURL *string       `json:"archiveUrl,omitempty"`
	Details    ImportDetails `json:"details"`
}
