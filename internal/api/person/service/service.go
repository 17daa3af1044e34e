package personService

import (
	"FaceAttendance/internal/api/person"
	personRepository "FaceAttendance/internal/api/person/repository"
	"FaceAttendance/internal/entity"
	"FaceAttendance/pkg/faceengine"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// PhotoStore persists one reference photo per person. Satisfied by the S3
// client in hosted mode and the local photo directory otherwise.
type PhotoStore interface {
	SavePhoto(name string, jpegData []byte) (string, error)
	RemovePhoto(name string) error
}

type IPersonService interface {
	Register(ctx context.Context, name string, image []byte) (person.RegisterResponse, error)
	List(ctx context.Context) ([]person.Summary, error)
	Remove(ctx context.Context, name string) error
	WarmCache(ctx context.Context) error

	// Embeddings exposes the in-memory identity snapshot, in registration
	// order, for the matcher. It never leaves the recognition boundary.
	Embeddings() []entity.Person
}

type personService struct {
	log    *logrus.Logger
	repo   personRepository.Repository
	engine faceengine.IFaceEngine
	photos PhotoStore

	mu    sync.RWMutex
	cache []entity.Person
	index map[string]int
}

func NewPersonService(
	log *logrus.Logger,
	repo personRepository.Repository,
	engine faceengine.IFaceEngine,
	photos PhotoStore,
) IPersonService {
	return &personService{
		log:    log,
		repo:   repo,
		engine: engine,
		photos: photos,
		index:  make(map[string]int),
	}
}
