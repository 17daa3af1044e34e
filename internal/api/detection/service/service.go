package detectionService

import (
	"FaceAttendance/internal/entity"
	"FaceAttendance/pkg/faceengine"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// DefaultSimilarityThreshold is the minimum dot-product score for a stored
// embedding to claim a detection.
const DefaultSimilarityThreshold = 0.4

// PersonSource provides the registered embeddings to match against.
type PersonSource interface {
	Embeddings() []entity.Person
}

type IDetectionService interface {
	// Recognize detects every face in the frame and resolves each one
	// against the identity store.
	Recognize(ctx context.Context, frame []byte) ([]entity.RecognizedFace, error)

	// Detect is Recognize plus an annotated copy of the input image as a
	// JPEG data URL.
	Detect(ctx context.Context, frame []byte) ([]entity.RecognizedFace, string, error)

	// ProcessFrame serves the live websocket loop.
	ProcessFrame(frame []byte) ([]entity.RecognizedFace, error)
}

type detectionService struct {
	log       *logrus.Logger
	engine    faceengine.IFaceEngine
	people    PersonSource
	threshold float64
}

func NewDetectionService(
	log *logrus.Logger,
	engine faceengine.IFaceEngine,
	people PersonSource,
) IDetectionService {
	return &detectionService{
		log:       log,
		engine:    engine,
		people:    people,
		threshold: DefaultSimilarityThreshold,
	}
}
