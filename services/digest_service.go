package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"yultimate/constants"
	"yultimate/dto"
	"yultimate/errors"
	"yultimate/services/logger"
	"yultimate/services/notification"
	"yultimate/utils"
)

// DigestService summarises a day of attendance per site.
type DigestService struct {
	db       *gorm.DB
	notifier notification.Service
	logger   logger.Logger
	now      func() time.Time
}

type DigestServiceOptions struct {
	DB       *gorm.DB
	Notifier notification.Service
	Logger   logger.Logger
}

func NewDigestService(opts DigestServiceOptions) *DigestService {
	return &DigestService{db: opts.DB, notifier: opts.Notifier, logger: opts.Logger, now: time.Now}
}

// Summarize computes per-site counts for the UTC calendar day of day.
func (s *DigestService) Summarize(ctx context.Context, day time.Time) ([]dto.SiteDigest, error) {
	start, end := utils.DayRange(day)

	digests := []dto.SiteDigest{}
	err := s.db.WithContext(ctx).
		Table("sessions").
		Select(`sites.id AS site_id,
			sites.name AS site_name,
			COUNT(DISTINCT sessions.id) AS sessions,
			COUNT(attendances.id) AS attendance_rows,
			COALESCE(SUM(CASE WHEN attendances.present THEN 1 ELSE 0 END), 0) AS children_present`).
		Joins("JOIN sites ON sites.id = sessions.site_id").
		Joins("LEFT JOIN attendances ON attendances.session_id = sessions.id").
		Where("sessions.date >= ? AND sessions.date < ?", start, end).
		Group("sites.id, sites.name").
		Order("sites.name").
		Scan(&digests).Error
	if err != nil {
		return nil, errors.Database("failed to build digest", err)
	}
	return digests, nil
}

// RunDaily summarises yesterday, logs every site line and broadcasts the digest.
func (s *DigestService) RunDaily(ctx context.Context) error {
	day := s.now().UTC().AddDate(0, 0, -1)
	digests, err := s.Summarize(ctx, day)
	if err != nil {
		return err
	}

	date := utils.FormatDate(day)
	if len(digests) == 0 {
		s.logger.Info("digest %s: no sessions", date)
	}
	for _, d := range digests {
		s.logger.Info("digest %s: site=%q sessions=%d attendance=%d present=%d",
			date, d.SiteName, d.Sessions, d.AttendanceRows, d.ChildrenPresent)
	}

	event := notification.NewEvent(constants.EventDailyDigest, map[string]interface{}{
		"date":  date,
		"sites": digests,
	})
	if err := s.notifier.Publish(event); err != nil {
		s.logger.Warn("digest broadcast failed: %v", err)
	}
	return nil
}
