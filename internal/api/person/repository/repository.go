package personRepository

import (
	"FaceAttendance/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Repository is the identity store. List strips embeddings; All is the
// recognition boundary and returns them in registration order, which gives
// the matcher its stable first-seen tie-break.
type Repository interface {
	Upsert(ctx context.Context, p entity.Person) error
	Get(ctx context.Context, name string) (entity.Person, error)
	List(ctx context.Context) ([]entity.Person, error)
	All(ctx context.Context) ([]entity.Person, error)
	Remove(ctx context.Context, name string) error
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
