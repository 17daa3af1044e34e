package personService

import (
	"context"
	"testing"

	"FaceAttendance/internal/api/person"
	personRepository "FaceAttendance/internal/api/person/repository"
	"FaceAttendance/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	faces []entity.Face
	err   error
}

func (f *fakeEngine) DetectFaces(_ []byte) ([]entity.Face, error) { return f.faces, f.err }
func (f *fakeEngine) IsConnected() bool                           { return true }
func (f *fakeEngine) Reconnect() error                            { return nil }
func (f *fakeEngine) Close()                                      {}

func singleFace(embedding []float64) []entity.Face {
	age := 28
	gender := entity.GenderMale
	return []entity.Face{{
		BBox:      [4]int{10, 10, 90, 90},
		Age:       &age,
		Gender:    &gender,
		Embedding: embedding,
	}}
}

func newTestService(t *testing.T, engine *fakeEngine) IPersonService {
	t.Helper()

	repo, err := personRepository.NewLocal(t.TempDir(), logrus.New())
	require.NoError(t, err)

	return NewPersonService(logrus.New(), repo, engine, nil)
}

func TestRegister_StoresAndCachesEmbedding(t *testing.T) {
	engine := &fakeEngine{faces: singleFace([]float64{1, 0, 0})}
	svc := newTestService(t, engine)

	resp, err := svc.Register(context.Background(), "ana", []byte("jpeg"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalRegistered)

	embeddings := svc.Embeddings()
	require.Len(t, embeddings, 1)
	assert.Equal(t, "ana", embeddings[0].Name)
	assert.Equal(t, []float64{1, 0, 0}, embeddings[0].Embedding)
}

func TestRegister_RejectsNoFace(t *testing.T) {
	svc := newTestService(t, &fakeEngine{})

	_, err := svc.Register(context.Background(), "ana", []byte("jpeg"))
	assert.ErrorIs(t, err, person.ErrNoFaceDetected)
}

func TestRegister_RejectsMultipleFaces(t *testing.T) {
	faces := append(singleFace([]float64{1, 0, 0}), singleFace([]float64{0, 1, 0})...)
	svc := newTestService(t, &fakeEngine{faces: faces})

	_, err := svc.Register(context.Background(), "ana", []byte("jpeg"))
	assert.ErrorIs(t, err, person.ErrMultipleFacesDetected)
}

func TestRegister_ReRegisterKeepsCachePosition(t *testing.T) {
	engine := &fakeEngine{faces: singleFace([]float64{1, 0, 0})}
	svc := newTestService(t, engine)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ana", []byte("jpeg"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob", []byte("jpeg"))
	require.NoError(t, err)

	engine.faces = singleFace([]float64{0, 0, 1})
	resp, err := svc.Register(ctx, "ana", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalRegistered)

	embeddings := svc.Embeddings()
	require.Len(t, embeddings, 2)
	assert.Equal(t, "ana", embeddings[0].Name)
	assert.Equal(t, []float64{0, 0, 1}, embeddings[0].Embedding)
	assert.Equal(t, "bob", embeddings[1].Name)
}

func TestRemove_DropsFromStoreAndCache(t *testing.T) {
	engine := &fakeEngine{faces: singleFace([]float64{1, 0, 0})}
	svc := newTestService(t, engine)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ana", []byte("jpeg"))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "ana"))
	assert.Empty(t, svc.Embeddings())

	err = svc.Remove(ctx, "ana")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestList_RendersGenderAndHidesEmbedding(t *testing.T) {
	engine := &fakeEngine{faces: singleFace([]float64{1, 0, 0})}
	svc := newTestService(t, engine)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ana", []byte("jpeg"))
	require.NoError(t, err)

	people, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "male", people[0].Gender)
	require.NotNil(t, people[0].Age)
	assert.Equal(t, 28, *people[0].Age)
}
