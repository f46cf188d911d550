package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"yultimate/commands"
	"yultimate/constants"
	"yultimate/dto"
	"yultimate/errors"
	"yultimate/models"
	"yultimate/services/logger"
	"yultimate/utils"
)

type ChildService struct {
	db     *gorm.DB
	cache  Cache
	logger logger.Logger
}

type ChildServiceOptions struct {
	DB     *gorm.DB
	Cache  Cache
	Logger logger.Logger
}

func NewChildService(opts ChildServiceOptions) *ChildService {
	return &ChildService{db: opts.DB, cache: opts.Cache, logger: opts.Logger}
}

// List returns every child with its site, ordered by last then first name.
func (s *ChildService) List(ctx context.Context) ([]models.Child, error) {
	children := []models.Child{}
	if hit, err := s.cache.Get(ctx, constants.CacheKeyChildren, &children); err != nil {
		s.logger.Warn("children cache read failed: %v", err)
	} else if hit {
		return children, nil
	}

	if err := s.db.WithContext(ctx).
		Preload("Site").
		Order("last_name, first_name").
		Find(&children).Error; err != nil {
		return nil, errors.Database("failed to list children", err)
	}
	if err := s.cache.Set(ctx, constants.CacheKeyChildren, children); err != nil {
		s.logger.Warn("children cache write failed: %v", err)
	}
	return children, nil
}

func (s *ChildService) Search(ctx context.Context, query string) ([]models.Child, error) {
	children, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return SearchChildren(query, children), nil
}

func (s *ChildService) Create(ctx context.Context, req dto.CreateChildRequest) (*models.Child, error) {
	child := models.Child{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		SiteID:    req.SiteID.Uint(),
	}
	if child.FirstName == "" || child.LastName == "" || child.SiteID == 0 {
		return nil, errors.Required("firstName, lastName and siteId are required")
	}
	if req.DateOfBirth != nil && strings.TrimSpace(*req.DateOfBirth) != "" {
		dob, err := utils.ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, errors.InvalidFormat("Invalid dateOfBirth", err)
		}
		child.DateOfBirth = &dob
	}

	ok, err := siteExists(s.db.WithContext(ctx), child.SiteID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Validation(fmt.Sprintf("Site %d does not exist", child.SiteID))
	}

	if err := commands.NewCreateChildCommand(s.db, &child).Execute(ctx); err != nil {
		return nil, errors.Database("failed to create child", err)
	}
	if err := s.db.WithContext(ctx).Preload("Site").First(&child, child.ID).Error; err != nil {
		return nil, errors.Database("failed to reload child", err)
	}
	s.invalidate(ctx)
	return &child, nil
}

func (s *ChildService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.CacheKeyChildren); err != nil {
		s.logger.Warn("children cache invalidation failed: %v", err)
	}
}
