// Package seeds loads demo data for local development.
package seeds

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"yultimate/constants"
	"yultimate/models"
	"yultimate/services"
	"yultimate/services/logger"
)

const DefaultPassword = "password123"

var seedUsers = []models.User{
	{Email: "admin@yultimate.com", Name: "Admin User", Role: constants.RoleAdmin},
	{Email: "manager@yultimate.com", Name: "Programme Manager", Role: constants.RoleManager},
	{Email: "coach@yultimate.com", Name: "Field Coach", Role: constants.RoleCoach},
}

var seedSites = []models.Site{
	{Name: "Community Center A", Location: "Downtown"},
	{Name: "School Field B", Location: "Northside"},
}

type seedChild struct {
	first, last, dob string
	site             int
}

var seedChildren = []seedChild{
	{"Aarav", "Sharma", "2014-03-12", 0},
	{"Priya", "Patel", "2013-07-22", 0},
	{"Rohan", "Mehta", "2015-01-05", 0},
	{"Ananya", "Iyer", "2014-11-30", 0},
	{"Kabir", "Singh", "2013-05-18", 1},
	{"Meera", "Nair", "2015-09-09", 1},
	{"Arjun", "Reddy", "2014-02-27", 1},
	{"Diya", "Kapoor", "2013-12-14", 1},
}

func ptr[T any](v T) *T { return &v }

// Run inserts demo users, sites, children, two sessions with attendance, a home visit and
// two assessments. Rows that already exist are left alone. Cached lists are dropped afterwards.
func Run(ctx context.Context, db *gorm.DB, cache services.Cache, log logger.Logger) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hash, err := services.HashPassword(DefaultPassword)
		if err != nil {
			return err
		}
		users := make(map[string]models.User, len(seedUsers))
		for _, u := range seedUsers {
			u.Password = hash
			if err := tx.Where(models.User{Email: u.Email}).FirstOrCreate(&u).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
			users[u.Role] = u
		}

		sites := make([]models.Site, len(seedSites))
		for i, s := range seedSites {
			if err := tx.Where(models.Site{Name: s.Name}).Attrs(models.Site{Location: s.Location}).FirstOrCreate(&s).Error; err != nil {
				return fmt.Errorf("seed site %s: %w", s.Name, err)
			}
			sites[i] = s
		}

		children := make([]models.Child, len(seedChildren))
		for i, c := range seedChildren {
			dob, _ := time.Parse(constants.DateLayout, c.dob)
			child := models.Child{FirstName: c.first, LastName: c.last, SiteID: sites[c.site].ID}
			if err := tx.Where(child).Attrs(models.Child{DateOfBirth: &dob}).FirstOrCreate(&child).Error; err != nil {
				return fmt.Errorf("seed child %s %s: %w", c.first, c.last, err)
			}
			children[i] = child
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		for i, site := range sites {
			session := models.Session{Date: today.AddDate(0, 0, -i), SiteID: site.ID}
			if err := tx.Where(session).FirstOrCreate(&session).Error; err != nil {
				return fmt.Errorf("seed session: %w", err)
			}
			for j, child := range children {
				if child.SiteID != site.ID {
					continue
				}
				a := models.Attendance{SessionID: session.ID, ChildID: child.ID}
				if err := tx.Where(a).Attrs(models.Attendance{Present: j%3 != 0}).FirstOrCreate(&a).Error; err != nil {
					return fmt.Errorf("seed attendance: %w", err)
				}
			}
		}

		first := children[0]
		visit := models.HomeVisit{ChildID: first.ID, CoachID: users[constants.RoleCoach].ID, VisitDate: today.AddDate(0, 0, -7)}
		if err := tx.Where(visit).Attrs(models.HomeVisit{
			VisitType: ptr(constants.VisitBaseline),
			Purpose:   ptr("Meet the family and explain the programme"),
		}).FirstOrCreate(&visit).Error; err != nil {
			return fmt.Errorf("seed home visit: %w", err)
		}

		for i, a := range []models.Assessment{
			{AssessmentType: constants.AssessmentBaseline, OverallScore: ptr(5.0), TeamworkScore: ptr(4.5)},
			{AssessmentType: constants.AssessmentEndline, OverallScore: ptr(7.5), TeamworkScore: ptr(7.0)},
		} {
			key := models.Assessment{ChildID: first.ID, AssessmentType: a.AssessmentType}
			a.AssessmentDate = today.AddDate(0, -3*(1-i), 0)
			a.RecordedByID = users[constants.RoleCoach].ID
			if err := tx.Where(key).Attrs(a).FirstOrCreate(&key).Error; err != nil {
				return fmt.Errorf("seed assessment: %w", err)
			}
		}

		log.Info("seeded %d users, %d sites, %d children", len(seedUsers), len(sites), len(children))
		return nil
	})
	if err != nil {
		return err
	}

	if err := cache.Delete(ctx, constants.CacheKeyChildren, constants.CacheKeySites); err != nil {
		log.Warn("seed cache invalidation failed: %v", err)
	}
	return nil
}
