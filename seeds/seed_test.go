package seeds

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"yultimate/constants"
	"yultimate/models"
	"yultimate/services"
	"yultimate/services/logger"
	"yultimate/testutil"
)

func TestRunIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, services.NopCache{}, logger.NewNop()))
	require.NoError(t, Run(ctx, db, services.NopCache{}, logger.NewNop()))

	counts := map[string]int64{}
	for name, model := range map[string]interface{}{
		"users":       &models.User{},
		"sites":       &models.Site{},
		"children":    &models.Child{},
		"sessions":    &models.Session{},
		"attendance":  &models.Attendance{},
		"homeVisits":  &models.HomeVisit{},
		"assessments": &models.Assessment{},
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		counts[name] = n
	}

	assert.Equal(t, int64(3), counts["users"])
	assert.Equal(t, int64(2), counts["sites"])
	assert.Equal(t, int64(8), counts["children"])
	assert.Equal(t, int64(2), counts["sessions"])
	assert.Equal(t, int64(8), counts["attendance"])
	assert.Equal(t, int64(1), counts["homeVisits"])
	assert.Equal(t, int64(2), counts["assessments"])

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@yultimate.com").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(DefaultPassword)))
}

func TestRunDropsCachedLists(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := services.NewRedisCache(rdb, time.Minute)

	require.NoError(t, cache.Set(ctx, constants.CacheKeyChildren, []models.Child{}))
	require.NoError(t, cache.Set(ctx, constants.CacheKeySites, []models.Site{}))

	require.NoError(t, Run(ctx, db, cache, logger.NewNop()))
	assert.False(t, mr.Exists(constants.CacheKeyChildren))
	assert.False(t, mr.Exists(constants.CacheKeySites))
}
