package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yultimate/constants"
	"yultimate/services/logger"
	"yultimate/services/notification"
	"yultimate/testutil"
)

func TestDigestRunDaily(t *testing.T) {
	db := testutil.NewDB(t)
	rec := &notification.Recorder{}
	svc := NewDigestService(DigestServiceOptions{DB: db, Notifier: rec, Logger: logger.NewNop()})
	svc.now = func() time.Time { return time.Date(2024, 5, 3, 6, 0, 0, 0, time.UTC) }

	north := testutil.CreateSite(t, db, "North Park")
	east := testutil.CreateSite(t, db, "East Field")
	ana := testutil.CreateChild(t, db, north.ID, "Ana", "Diaz")
	ben := testutil.CreateChild(t, db, north.ID, "Ben", "Okoro")

	s1 := testutil.CreateSession(t, db, north.ID, day(2024, 5, 2))
	testutil.CreateSession(t, db, east.ID, day(2024, 5, 2))
	testutil.CreateSession(t, db, north.ID, day(2024, 5, 3))
	testutil.CreateAttendance(t, db, s1.ID, ana.ID, true, nil)
	testutil.CreateAttendance(t, db, s1.ID, ben.ID, false, nil)

	digests, err := svc.Summarize(context.Background(), day(2024, 5, 2))
	require.NoError(t, err)
	require.Len(t, digests, 2)
	assert.Equal(t, "East Field", digests[0].SiteName)
	assert.Equal(t, 1, digests[0].Sessions)
	assert.Equal(t, 0, digests[0].AttendanceRows)
	assert.Equal(t, "North Park", digests[1].SiteName)
	assert.Equal(t, 2, digests[1].AttendanceRows)
	assert.Equal(t, 1, digests[1].ChildrenPresent)

	require.NoError(t, svc.RunDaily(context.Background()))
	require.Len(t, rec.Events, 1)
	assert.Equal(t, constants.EventDailyDigest, rec.Events[0].Type)
}
