package attendanceRepository

import (
	"context"
	"testing"

	"FaceAttendance/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(name string, eventType entity.EventType, date, at string) entity.AttendanceEvent {
	return entity.AttendanceEvent{
		PersonName: name,
		Type:       eventType,
		Date:       date,
		Time:       at,
	}
}

func TestLocalRepository_AppendAndLastEvent(t *testing.T) {
	repo, err := NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testEvent("ana", entity.EventEntrance, "2025-03-14", "09:00:00")))
	require.NoError(t, repo.Append(ctx, testEvent("ana", entity.EventExit, "2025-03-14", "17:00:00")))

	last, err := repo.LastEvent(ctx, "ana", "2025-03-14")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, entity.EventExit, last.Type)
	assert.Equal(t, "17:00:00", last.Time)
}

func TestLocalRepository_LastEventNilWhenNone(t *testing.T) {
	repo, err := NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)

	last, err := repo.LastEvent(context.Background(), "ana", "2025-03-14")
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestLocalRepository_DayGroupsByPerson(t *testing.T) {
	repo, err := NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testEvent("ana", entity.EventEntrance, "2025-03-14", "09:00:00")))
	require.NoError(t, repo.Append(ctx, testEvent("bob", entity.EventEntrance, "2025-03-14", "09:05:00")))
	require.NoError(t, repo.Append(ctx, testEvent("ana", entity.EventExit, "2025-03-14", "17:00:00")))
	require.NoError(t, repo.Append(ctx, testEvent("ana", entity.EventEntrance, "2025-03-15", "08:30:00")))

	day, err := repo.Day(ctx, "2025-03-14")
	require.NoError(t, err)
	require.Len(t, day, 2)
	require.Len(t, day["ana"], 2)
	assert.Equal(t, entity.EventEntrance, day["ana"][0].Type)
	assert.Equal(t, entity.EventExit, day["ana"][1].Type)
	require.Len(t, day["bob"], 1)
}

func TestLocalRepository_HistoryAndPersonEvents(t *testing.T) {
	repo, err := NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testEvent("ana", entity.EventEntrance, "2025-03-14", "09:00:00")))
	require.NoError(t, repo.Append(ctx, testEvent("ana", entity.EventEntrance, "2025-03-15", "08:30:00")))
	require.NoError(t, repo.Append(ctx, testEvent("bob", entity.EventEntrance, "2025-03-15", "09:00:00")))

	history, err := repo.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Len(t, history["2025-03-15"], 2)

	events, err := repo.PersonEvents(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Len(t, events["2025-03-14"], 1)
	assert.Len(t, events["2025-03-15"], 1)
}

func TestLocalRepository_SurvivesReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewLocal(dir, logrus.New())
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, testEvent("ana", entity.EventEntrance, "2025-03-14", "09:00:00")))

	reloaded, err := NewLocal(dir, logrus.New())
	require.NoError(t, err)

	last, err := reloaded.LastEvent(ctx, "ana", "2025-03-14")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, entity.EventEntrance, last.Type)
}
