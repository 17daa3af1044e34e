package personRepository

import (
	"context"
	"testing"
	"time"

	"FaceAttendance/internal/api/person"
	"FaceAttendance/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPerson(name string, registeredAt time.Time) entity.Person {
	age := 30
	gender := entity.GenderFemale
	return entity.Person{
		Name:         name,
		Embedding:    []float64{0.1, 0.2, 0.3},
		Age:          &age,
		Gender:       &gender,
		RegisteredAt: registeredAt,
	}
}

func TestLocalRepository_UpsertGetRemove(t *testing.T) {
	repo, err := NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)
	ctx := context.Background()

	ana := testPerson("ana", time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Upsert(ctx, ana))

	got, err := repo.Get(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Name)
	assert.Equal(t, ana.Embedding, got.Embedding)
	require.NotNil(t, got.Age)
	assert.Equal(t, 30, *got.Age)

	require.NoError(t, repo.Remove(ctx, "ana"))

	_, err = repo.Get(ctx, "ana")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestLocalRepository_RemoveMissing(t *testing.T) {
	repo, err := NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)

	err = repo.Remove(context.Background(), "nobody")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestLocalRepository_ListStripsEmbeddings(t *testing.T) {
	repo, err := NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testPerson("ana", time.Now())))

	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Nil(t, people[0].Embedding)
}

func TestLocalRepository_AllInRegistrationOrder(t *testing.T) {
	repo, err := NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)
	ctx := context.Background()

	t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, testPerson("zoe", t0)))
	require.NoError(t, repo.Upsert(ctx, testPerson("ana", t0.Add(time.Hour))))

	people, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "zoe", people[0].Name)
	assert.Equal(t, "ana", people[1].Name)
}

func TestLocalRepository_SurvivesReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewLocal(dir, logrus.New())
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, testPerson("ana", time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))))

	reloaded, err := NewLocal(dir, logrus.New())
	require.NoError(t, err)

	got, err := reloaded.Get(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, got.Embedding)
}
