package attendanceRepository

import (
	"FaceAttendance/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Repository is the append-only attendance ledger. Events are never updated
// or deleted; LastEvent returns nil when the person has no event on that date.
type Repository interface {
	Append(ctx context.Context, event entity.AttendanceEvent) error
	LastEvent(ctx context.Context, name, date string) (*entity.AttendanceEvent, error)
	Day(ctx context.Context, date string) (entity.DayRecords, error)
	History(ctx context.Context) (entity.AttendanceHistory, error)
	PersonEvents(ctx context.Context, name string) (map[string][]entity.AttendanceEvent, error)
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &postgresRepository{
		DB:  db,
		log: log,
	}
}

type postgresRepository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}
