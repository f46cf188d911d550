package dto

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"

	apperrors "yultimate/errors"
	"yultimate/models"
)

type CreateSessionRequest struct {
	Date   string     `json:"date" binding:"required"`
	SiteID FlexibleID `json:"siteId" binding:"required"`
	Notes  *string    `json:"notes"`
}

type AttendanceEntry struct {
	ChildID FlexibleID `json:"childId"`
	Present Truthy     `json:"present"`
	Notes   *string    `json:"notes"`
}

type SaveAttendanceRequest struct {
	Attendance json.RawMessage `json:"attendance"`
}

// Entries decodes the attendance field, which must be a JSON array.
func (r SaveAttendanceRequest) Entries() ([]AttendanceEntry, error) {
	raw := bytes.TrimSpace(r.Attendance)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, apperrors.Validation("attendance must be an array")
	}
	entries := []AttendanceEntry{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, apperrors.InvalidFormat("invalid attendance entry", err)
	}
	return entries, nil
}

type SaveAttendanceResponse struct {
	Message    string              `json:"message"`
	Count      int                 `json:"count"`
	Attendance []models.Attendance `json:"attendance"`
}

type SessionSummary struct {
	AttendanceCount int `json:"attendanceCount"`
	ChildrenPresent int `json:"childrenPresent"`
}

type SessionDetail struct {
	models.Session
	Summary SessionSummary `json:"summary"`
}

type AttendanceReportRow struct {
	Date      time.Time
	SiteName  string
	FirstName string
	LastName  string
	Present   bool
	Notes     *string
}

type SiteDigest struct {
	SiteID          uint   `json:"siteId"`
	SiteName        string `json:"siteName"`
	Sessions        int    `json:"sessions"`
	AttendanceRows  int    `json:"attendanceRows"`
	ChildrenPresent int    `json:"childrenPresent"`
}
