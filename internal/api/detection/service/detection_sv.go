package detectionService

import (
	"FaceAttendance/internal/api/detection"
	"FaceAttendance/internal/entity"
	contextPkg "FaceAttendance/pkg/context"
	"FaceAttendance/pkg/imaging"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *detectionService) Recognize(ctx context.Context, frame []byte) ([]entity.RecognizedFace, error) {
	requestID := contextPkg.GetRequestID(ctx)

	faces, err := s.engine.DetectFaces(frame)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Face engine call failed")
		return nil, detection.ErrEngineUnavailable
	}

	recognized := make([]entity.RecognizedFace, 0, len(faces))
	for _, face := range faces {
		name, similarity := s.match(face.Embedding)
		recognized = append(recognized, entity.RecognizedFace{
			Face:       face,
			Name:       name,
			Similarity: similarity,
		})
	}

	return recognized, nil
}

func (s *detectionService) Detect(ctx context.Context, frame []byte) ([]entity.RecognizedFace, string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	faces, err := s.Recognize(ctx, frame)
	if err != nil {
		return nil, "", err
	}

	img, err := imaging.Decode(frame)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Could not decode frame for annotation")
		return nil, "", detection.ErrInvalidImage
	}

	annotated, err := imaging.EncodeJPEGDataURL(imaging.Annotate(img, faces))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode annotated image")
		return nil, "", err
	}

	return faces, annotated, nil
}

func (s *detectionService) ProcessFrame(frame []byte) ([]entity.RecognizedFace, error) {
	return s.Recognize(context.Background(), frame)
}
