package attendanceService

import (
	"time"

	attendanceRepository "FaceAttendance/internal/api/attendance/repository"
	"FaceAttendance/internal/entity"
	redisPkg "FaceAttendance/pkg/redis"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// DefaultMinInterval is the minimum wall-clock gap between two consecutive
// events for the same person.
const DefaultMinInterval = 10 * time.Second

// Recognizer resolves every face in a camera frame against the identity
// store. Satisfied by the detection service.
type Recognizer interface {
	Recognize(ctx context.Context, frame []byte) ([]entity.RecognizedFace, error)
}

type IAttendanceService interface {
	RecordFromImage(ctx context.Context, frame []byte) ([]entity.AttendanceEvent, []Skipped, error)
	Day(ctx context.Context, date string) (entity.DayRecords, entity.DayStats, error)
	History(ctx context.Context) (entity.AttendanceHistory, error)
	PersonEvents(ctx context.Context, name string) (map[string][]entity.AttendanceEvent, error)
}

// Skipped is a face that was detected but produced no ledger event.
type Skipped struct {
	Name   string
	Reason string
}

type attendanceService struct {
	log         *logrus.Logger
	repo        attendanceRepository.Repository
	recognizer  Recognizer
	redis       redisPkg.IRedis
	minInterval time.Duration
	now         func() time.Time
}

func NewAttendanceService(
	log *logrus.Logger,
	repo attendanceRepository.Repository,
	recognizer Recognizer,
	redis redisPkg.IRedis,
) IAttendanceService {
	return &attendanceService{
		log:         log,
		repo:        repo,
		recognizer:  recognizer,
		redis:       redis,
		minInterval: DefaultMinInterval,
		now:         time.Now,
	}
}
