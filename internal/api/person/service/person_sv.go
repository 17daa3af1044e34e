package personService

import (
	"fmt"
	"time"

	"FaceAttendance/internal/api/person"
	"FaceAttendance/internal/entity"
	contextPkg "FaceAttendance/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// WarmCache loads every stored embedding into memory so matching does not
// hit the backend once per frame. Called once at startup.
func (s *personService) WarmCache(ctx context.Context) error {
	people, err := s.repo.All(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = people
	s.index = make(map[string]int, len(people))
	for i, p := range people {
		s.index[p.Name] = i
	}

	s.log.Infof("Identity cache warmed with %d registered people", len(people))
	return nil
}

func (s *personService) Register(ctx context.Context, name string, image []byte) (person.RegisterResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	faces, err := s.engine.DetectFaces(image)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Face engine failed during registration")
		return person.RegisterResponse{}, person.ErrEngineUnavailable
	}

	if len(faces) == 0 {
		return person.RegisterResponse{}, person.ErrNoFaceDetected
	}
	if len(faces) > 1 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"faces":      len(faces),
		}).Warn("Registration image contains multiple faces")
		return person.RegisterResponse{}, person.ErrMultipleFacesDetected
	}

	face := faces[0]
	newPerson := entity.Person{
		Name:         name,
		Embedding:    face.Embedding,
		Age:          face.Age,
		Gender:       face.Gender,
		RegisteredAt: time.Now(),
	}

	if s.photos != nil {
		photoURL, err := s.photos.SavePhoto(name, image)
		if err != nil {
			// The embedding is what attendance needs; a lost photo is not
			// worth failing the registration over.
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       name,
				"error":      err.Error(),
			}).Warn("Failed to store reference photo")
		} else {
			newPerson.PhotoURL = photoURL
		}
	}

	if err := s.repo.Upsert(ctx, newPerson); err != nil {
		return person.RegisterResponse{}, err
	}

	total := s.cacheUpsert(newPerson)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"name":       name,
		"total":      total,
	}).Info("Person registered")

	return person.RegisterResponse{
		Success:         true,
		Message:         fmt.Sprintf("%s registered successfully", name),
		TotalRegistered: total,
	}, nil
}

func (s *personService) List(ctx context.Context) ([]person.Summary, error) {
	people, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]person.Summary, 0, len(people))
	for _, p := range people {
		summaries = append(summaries, person.NewSummary(p))
	}
	return summaries, nil
}

func (s *personService) Remove(ctx context.Context, name string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.repo.Remove(ctx, name); err != nil {
		return err
	}

	if s.photos != nil {
		if err := s.photos.RemovePhoto(name); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       name,
				"error":      err.Error(),
			}).Warn("Failed to remove reference photo")
		}
	}

	s.cacheRemove(name)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"name":       name,
	}).Info("Person removed")

	return nil
}

func (s *personService) Embeddings() []entity.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entity.Person, len(s.cache))
	copy(snapshot, s.cache)
	return snapshot
}

// cacheUpsert keeps re-registrations at their original position so tie
// breaking between equal similarities stays first-seen-wins.
func (s *personService) cacheUpsert(p entity.Person) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[p.Name]; ok {
		s.cache[i] = p
	} else {
		s.index[p.Name] = len(s.cache)
		s.cache = append(s.cache, p)
	}
	return len(s.cache)
}

func (s *personService) cacheRemove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[name]
	if !ok {
		return
	}

	s.cache = append(s.cache[:i], s.cache[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.cache); j++ {
		s.index[s.cache[j].Name] = j
	}
}
