// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"yultimate/models"
)

// NewDB opens a migrated SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func CreateSite(t *testing.T, db *gorm.DB, name string) *models.Site {
	t.Helper()
	site := &models.Site{Name: name, Location: name + " location"}
	require.NoError(t, db.Create(site).Error)
	return site
}

func CreateChild(t *testing.T, db *gorm.DB, siteID uint, first, last string) *models.Child {
	t.Helper()
	child := &models.Child{FirstName: first, LastName: last, SiteID: siteID}
	require.NoError(t, db.Create(child).Error)
	return child
}

func CreateSession(t *testing.T, db *gorm.DB, siteID uint, date time.Time) *models.Session {
	t.Helper()
	session := &models.Session{SiteID: siteID, Date: date}
	require.NoError(t, db.Create(session).Error)
	return session
}

func CreateAttendance(t *testing.T, db *gorm.DB, sessionID, childID uint, present bool, notes *string) *models.Attendance {
	t.Helper()
	a := &models.Attendance{SessionID: sessionID, ChildID: childID, Present: present, Notes: notes}
	require.NoError(t, db.Create(a).Error)
	return a
}

// CreateUser stores a user whose password is hashed with the minimum bcrypt cost.
func CreateUser(t *testing.T, db *gorm.DB, email, password, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Email: email, Password: string(hash), Name: email, Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func Ptr[T any](v T) *T { return &v }
