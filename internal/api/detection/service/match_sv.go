package detectionService

import (
	"FaceAttendance/internal/entity"
	"FaceAttendance/pkg/vector"
)

// match runs the query embedding against every stored one and keeps the
// best score. Embeddings are unit length, so dot product equals cosine
// similarity. Strictly-greater comparison over the registration-ordered
// snapshot makes exact ties resolve to the earliest registration.
func (s *detectionService) match(embedding []float64) (string, float64) {
	var bestName string
	bestScore := 0.0

	for _, p := range s.people.Embeddings() {
		if len(p.Embedding) == 0 {
			continue
		}

		if score := vector.Dot(embedding, p.Embedding); score > bestScore {
			bestScore = score
			bestName = p.Name
		}
	}

	if bestName == "" || bestScore < s.threshold {
		return entity.UnknownPerson, 0
	}

	return bestName, bestScore
}
