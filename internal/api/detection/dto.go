package detection

import (
	"FaceAttendance/internal/api/person"
	"FaceAttendance/internal/entity"
)

type DetectRequest struct {
	Image string `json:"image" validate:"required"`
}

// FaceResult is the outward face shape. The embedding deliberately has no
// field here; it never leaves the recognition boundary.
type FaceResult struct {
	BBox       [4]int   `json:"bbox"`
	Age        *int     `json:"age"`
	Gender     string   `json:"gender"`
	Confidence *float64 `json:"confidence"`
	Name       string   `json:"name"`
	Similarity float64  `json:"similarity"`
}

type DetectResponse struct {
	Success        bool         `json:"success"`
	Faces          []FaceResult `json:"faces"`
	TotalFaces     int          `json:"totalFaces"`
	AnnotatedImage string       `json:"annotatedImage"`
}

type FrameResponse struct {
	Faces      []FaceResult `json:"faces"`
	TotalFaces int          `json:"totalFaces"`
}

func NewFaceResult(face entity.RecognizedFace) FaceResult {
	return FaceResult{
		BBox:       face.BBox,
		Age:        face.Age,
		Gender:     person.GenderLabel(face.Gender),
		Confidence: face.Confidence,
		Name:       face.Name,
		Similarity: face.Similarity,
	}
}

func NewFaceResults(faces []entity.RecognizedFace) []FaceResult {
	results := make([]FaceResult, 0, len(faces))
	for _, face := range faces {
		results = append(results, NewFaceResult(face))
	}
	return results
}
