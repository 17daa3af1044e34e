package attendanceRepository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"FaceAttendance/internal/api/attendance"
	"FaceAttendance/internal/entity"

	"github.com/sirupsen/logrus"
)

// localRepository keeps the ledger in a single JSON file shaped
// date -> name -> [events]. A mutex serializes the read-modify-write
// cycle so concurrent recordings cannot drop each other's events.
type localRepository struct {
	mu      sync.Mutex
	path    string
	history entity.AttendanceHistory
	log     *logrus.Logger
}

func NewLocal(dataDir string, log *logrus.Logger) (Repository, error) {
	repo := &localRepository{
		path:    filepath.Join(dataDir, "attendance.json"),
		history: entity.AttendanceHistory{},
		log:     log,
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
		r.log.Errorf("Failed to read attendance file %s: %v", r.path, err)
		return attendance.ErrStoreUnavailable
	}

	if err := json.Unmarshal(data, &r.history); err != nil {
		r.log.Errorf("Failed to parse attendance file %s: %v", r.path, err)
		return attendance.ErrStoreUnavailable
	}

	return nil
}

// save rewrites the whole file; callers must hold the mutex.
func (r *localRepository) save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		r.log.Errorf("Failed to create data dir: %v", err)
		return attendance.ErrStoreUnavailable
	}

	data, err := json.MarshalIndent(r.history, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.log.Errorf("Failed to write attendance file %s: %v", r.path, err)
		return attendance.ErrStoreUnavailable
	}

	return nil
}

func (r *localRepository) Append(_ context.Context, event entity.AttendanceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.history[event.Date]
	if !ok {
		day = entity.DayRecords{}
		r.history[event.Date] = day
	}
	day[event.PersonName] = append(day[event.PersonName], event)

	return r.save()
}

func (r *localRepository) LastEvent(_ context.Context, name, date string) (*entity.AttendanceEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.history[date][name]
	if len(events) == 0 {
		return nil, nil
	}

	last := events[len(events)-1]
	return &last, nil
}

func (r *localRepository) Day(_ context.Context, date string) (entity.DayRecords, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := entity.DayRecords{}
	for name, events := range r.history[date] {
		records[name] = append([]entity.AttendanceEvent(nil), events...)
	}
	return records, nil
}

func (r *localRepository) History(_ context.Context) (entity.AttendanceHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := entity.AttendanceHistory{}
	for date, day := range r.history {
		records := entity.DayRecords{}
		for name, events := range day {
			records[name] = append([]entity.AttendanceEvent(nil), events...)
		}
		history[date] = records
	}
	return history, nil
}

func (r *localRepository) PersonEvents(_ context.Context, name string) (map[string][]entity.AttendanceEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate := make(map[string][]entity.AttendanceEvent)
	for date, day := range r.history {
		if events, ok := day[name]; ok {
			byDate[date] = append([]entity.AttendanceEvent(nil), events...)
		}
	}
	return byDate, nil
}
