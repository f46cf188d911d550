package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"yultimate/builders"
	"yultimate/dto"
	"yultimate/errors"
	"yultimate/utils"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// AttendanceRows returns attendance between from and to, both whole UTC days inclusive.
func (s *ReportService) AttendanceRows(ctx context.Context, from, to time.Time, siteID *uint) ([]dto.AttendanceReportRow, error) {
	start := utils.StartOfDay(from)
	_, end := utils.DayRange(to)

	q := s.db.WithContext(ctx).
		Table("attendances").
		Select(`sessions.date AS date,
			sites.name AS site_name,
			children.first_name AS first_name,
			children.last_name AS last_name,
			attendances.present AS present,
			attendances.notes AS notes`).
		Joins("JOIN sessions ON sessions.id = attendances.session_id").
		Joins("JOIN sites ON sites.id = sessions.site_id").
		Joins("JOIN children ON children.id = attendances.child_id").
		Where("sessions.date >= ? AND sessions.date < ?", start, end)
	if siteID != nil {
		q = q.Where("sessions.site_id = ?", *siteID)
	}

	rows := []dto.AttendanceReportRow{}
	if err := q.Order("sessions.date, sites.name, children.last_name, children.first_name").
		Scan(&rows).Error; err != nil {
		return nil, errors.Database("failed to load attendance report", err)
	}
	return rows, nil
}

// AttendanceCSV renders the attendance report for the range as CSV.
func (s *ReportService) AttendanceCSV(ctx context.Context, from, to time.Time, siteID *uint) ([]byte, error) {
	rows, err := s.AttendanceRows(ctx, from, to, siteID)
	if err != nil {
		return nil, err
	}
	return builders.NewAttendanceReportBuilder().WithRows(rows).Build(), nil
}

func AttendanceReportFilename(from, to time.Time) string {
	return "attendance-report-" + utils.FormatDate(from) + "-to-" + utils.FormatDate(to) + ".csv"
}
