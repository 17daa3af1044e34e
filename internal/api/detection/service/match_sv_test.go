package detectionService

import (
	"testing"
	"time"

	"FaceAttendance/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type staticPeople []entity.Person

func (s staticPeople) Embeddings() []entity.Person { return s }

func registered(name string, embedding []float64, at time.Time) entity.Person {
	return entity.Person{
		Name:         name,
		Embedding:    embedding,
		RegisteredAt: at,
	}
}

func newMatcher(people ...entity.Person) *detectionService {
	return &detectionService{
		log:       logrus.New(),
		people:    staticPeople(people),
		threshold: DefaultSimilarityThreshold,
	}
}

func TestMatch_PicksBestScore(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newMatcher(
		registered("ana", []float64{1, 0, 0}, t0),
		registered("bob", []float64{0, 1, 0}, t0.Add(time.Hour)),
	)

	name, score := svc.match([]float64{0.1, 0.99, 0})

	assert.Equal(t, "bob", name)
	assert.InDelta(t, 0.99, score, 1e-9)
}

func TestMatch_BelowThresholdIsUnknown(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newMatcher(
		registered("ana", []float64{1, 0, 0}, t0),
	)

	name, score := svc.match([]float64{0.2, 0.9, 0.37})

	assert.Equal(t, entity.UnknownPerson, name)
	assert.Zero(t, score)
}

func TestMatch_EmptyStoreIsUnknown(t *testing.T) {
	svc := newMatcher()

	name, score := svc.match([]float64{1, 0, 0})

	assert.Equal(t, entity.UnknownPerson, name)
	assert.Zero(t, score)
}

func TestMatch_ExactTieGoesToEarliestRegistration(t *testing.T) {
	// Embeddings() is registration-ordered, and only a strictly greater
	// score displaces the current best.
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newMatcher(
		registered("first", []float64{1, 0, 0}, t0),
		registered("second", []float64{1, 0, 0}, t0.Add(time.Hour)),
	)

	name, score := svc.match([]float64{1, 0, 0})

	assert.Equal(t, "first", name)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestMatch_SkipsPeopleWithoutEmbedding(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newMatcher(
		registered("ghost", nil, t0),
		registered("ana", []float64{1, 0, 0}, t0.Add(time.Hour)),
	)

	name, _ := svc.match([]float64{1, 0, 0})

	assert.Equal(t, "ana", name)
}
