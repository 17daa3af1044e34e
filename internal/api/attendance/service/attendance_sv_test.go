package attendanceService

import (
	"context"
	"testing"
	"time"

	"FaceAttendance/internal/api/attendance"
	attendanceRepository "FaceAttendance/internal/api/attendance/repository"
	"FaceAttendance/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	faces []entity.RecognizedFace
}

func (f *fakeRecognizer) Recognize(_ context.Context, _ []byte) ([]entity.RecognizedFace, error) {
	return f.faces, nil
}

func recognizedAs(name string, similarity float64) entity.RecognizedFace {
	return entity.RecognizedFace{Name: name, Similarity: similarity}
}

func newTestService(t *testing.T, recognizer Recognizer, at time.Time) (*attendanceService, *time.Time) {
	t.Helper()

	repo, err := attendanceRepository.NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)

	clock := at
	svc := &attendanceService{
		log:         logrus.New(),
		repo:        repo,
		recognizer:  recognizer,
		minInterval: DefaultMinInterval,
		now:         func() time.Time { return clock },
	}
	return svc, &clock
}

func TestRecordFromImage_EntranceThenDebounceThenExit(t *testing.T) {
	recognizer := &fakeRecognizer{faces: []entity.RecognizedFace{
		recognizedAs("ana", 0.82),
	}}
	svc, clock := newTestService(t, recognizer, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	recorded, skipped, err := svc.RecordFromImage(ctx, []byte("frame"))
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Empty(t, skipped)
	assert.Equal(t, entity.EventEntrance, recorded[0].Type)
	assert.Equal(t, "2025-03-14", recorded[0].Date)
	assert.Equal(t, "09:00:00", recorded[0].Time)

	// Same face again 5 seconds later is inside the debounce window.
	*clock = clock.Add(5 * time.Second)
	recorded, skipped, err = svc.RecordFromImage(ctx, []byte("frame"))
	require.NoError(t, err)
	assert.Empty(t, recorded)
	require.Len(t, skipped, 1)
	assert.Equal(t, attendance.SkipReasonTooSoon, skipped[0].Reason)

	// Past the window the event toggles to an exit.
	*clock = clock.Add(20 * time.Second)
	recorded, _, err = svc.RecordFromImage(ctx, []byte("frame"))
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, entity.EventExit, recorded[0].Type)
}

func TestRecordFromImage_SkipsUnknownFaces(t *testing.T) {
	recognizer := &fakeRecognizer{faces: []entity.RecognizedFace{
		recognizedAs(entity.UnknownPerson, 0),
		recognizedAs("ana", 0.9),
	}}
	svc, _ := newTestService(t, recognizer, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))

	recorded, skipped, err := svc.RecordFromImage(context.Background(), []byte("frame"))
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, "ana", recorded[0].PersonName)
	require.Len(t, skipped, 1)
	assert.Equal(t, attendance.SkipReasonUnknown, skipped[0].Reason)
}

func TestRecordFromImage_SamePersonTwiceInOneFrame(t *testing.T) {
	recognizer := &fakeRecognizer{faces: []entity.RecognizedFace{
		recognizedAs("ana", 0.9),
		recognizedAs("ana", 0.85),
	}}
	svc, _ := newTestService(t, recognizer, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))

	recorded, skipped, err := svc.RecordFromImage(context.Background(), []byte("frame"))
	require.NoError(t, err)
	// The first detection records the entrance, the second lands inside
	// the debounce window.
	require.Len(t, recorded, 1)
	require.Len(t, skipped, 1)
	assert.Equal(t, attendance.SkipReasonTooSoon, skipped[0].Reason)
}

func TestDay_RejectsMalformedDate(t *testing.T) {
	svc, _ := newTestService(t, &fakeRecognizer{}, time.Now())

	_, _, err := svc.Day(context.Background(), "14-03-2025")
	assert.ErrorIs(t, err, attendance.ErrInvalidDate)
}
