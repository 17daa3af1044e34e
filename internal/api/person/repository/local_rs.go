package personRepository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"FaceAttendance/internal/api/person"
	"FaceAttendance/internal/entity"

	"github.com/sirupsen/logrus"
)

// localRepository keeps the identity store in a single JSON file, mirroring
// the on-disk layout name -> {embedding, metadata}. Operations are
// serialized by a mutex so concurrent registrations cannot interleave the
// read-modify-write cycle.
type localRepository struct {
	mu     sync.Mutex
	path   string
	people map[string]localPerson
	log    *logrus.Logger
}

type localPerson struct {
	Embedding    []float64 `json:"embedding"`
	Age          *int      `json:"age"`
	Gender       *string   `json:"gender"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func NewLocal(dataDir string, log *logrus.Logger) (Repository, error) {
	repo := &localRepository{
		path:   filepath.Join(dataDir, "people.json"),
		people: make(map[string]localPerson),
		log:    log,
	}

	if err := repo.load(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *localRepository) load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		r.log.Errorf("Failed to read people file %s: %v", r.path, err)
		return person.ErrStoreUnavailable
	}

	if err := json.Unmarshal(data, &r.people); err != nil {
		r.log.Errorf("Failed to parse people file %s: %v", r.path, err)
		return person.ErrStoreUnavailable
	}

	return nil
}

// save rewrites the whole file; callers must hold the mutex.
func (r *localRepository) save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		r.log.Errorf("Failed to create data dir: %v", err)
		return person.ErrStoreUnavailable
	}

	data, err := json.MarshalIndent(r.people, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.log.Errorf("Failed to write people file %s: %v", r.path, err)
		return person.ErrStoreUnavailable
	}

	return nil
}

func (r *localRepository) Upsert(_ context.Context, p entity.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.people[p.Name] = localPerson{
		Embedding:    p.Embedding,
		Age:          p.Age,
		Gender:       p.Gender,
		PhotoURL:     p.PhotoURL,
		RegisteredAt: p.RegisteredAt,
	}

	return r.save()
}

func (r *localRepository) Get(_ context.Context, name string) (entity.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.people[name]
	if !ok {
		return entity.Person{}, person.ErrPersonNotFound
	}

	return stored.toEntity(name), nil
}

func (r *localRepository) List(_ context.Context) ([]entity.Person, error) {
	people, err := r.snapshot()
	if err != nil {
		return nil, err
	}

	for i := range people {
		people[i].Embedding = nil
	}
	sort.Slice(people, func(i, j int) bool { return people[i].Name < people[j].Name })

	return people, nil
}

func (r *localRepository) All(_ context.Context) ([]entity.Person, error) {
	people, err := r.snapshot()
	if err != nil {
		return nil, err
	}

	sort.Slice(people, func(i, j int) bool {
		if !people[i].RegisteredAt.Equal(people[j].RegisteredAt) {
			return people[i].RegisteredAt.Before(people[j].RegisteredAt)
		}
		return people[i].Name < people[j].Name
	})

	return people, nil
}

func (r *localRepository) snapshot() ([]entity.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	people := make([]entity.Person, 0, len(r.people))
	for name, stored := range r.people {
		people = append(people, stored.toEntity(name))
	}
	return people, nil
}

func (r *localRepository) Remove(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.people[name]; !ok {
		return person.ErrPersonNotFound
	}

	delete(r.people, name)
	return r.save()
}

func (p localPerson) toEntity(name string) entity.Person {
	return entity.Person{
		Name:         name,
		Embedding:    p.Embedding,
		Age:          p.Age,
		Gender:       p.Gender,
		PhotoURL:     p.PhotoURL,
		RegisteredAt: p.RegisteredAt,
	}
}
