package services

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"yultimate/constants"
	"yultimate/errors"
	"yultimate/models"
	"yultimate/services/logger"
)

type SiteService struct {
	db     *gorm.DB
	cache  Cache
	logger logger.Logger
}

type SiteServiceOptions struct {
	DB     *gorm.DB
	Cache  Cache
	Logger logger.Logger
}

func NewSiteService(opts SiteServiceOptions) *SiteService {
	return &SiteService{db: opts.DB, cache: opts.Cache, logger: opts.Logger}
}

func (s *SiteService) List(ctx context.Context) ([]models.Site, error) {
	sites := []models.Site{}
	if hit, err := s.cache.Get(ctx, constants.CacheKeySites, &sites); err != nil {
		s.logger.Warn("site cache read failed: %v", err)
	} else if hit {
		return sites, nil
	}

	if err := s.db.WithContext(ctx).Order("name").Find(&sites).Error; err != nil {
		return nil, errors.Database("failed to list sites", err)
	}
	if err := s.cache.Set(ctx, constants.CacheKeySites, sites); err != nil {
		s.logger.Warn("site cache write failed: %v", err)
	}
	return sites, nil
}

func siteExists(db *gorm.DB, id uint) (bool, error) {
	var site models.Site
	err := db.Select("id").First(&site, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Database("failed to load site", err)
	}
	return true, nil
}
