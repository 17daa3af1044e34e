package entity

// UnknownPerson is the identity reported when no stored embedding clears
// the similarity threshold.
const UnknownPerson = "unknown"

// Face is a single detection returned by the face engine. Optional
// attributes the engine could not compute stay nil instead of being probed
// at runtime.
type Face struct {
	BBox       [4]int // x1, y1, x2, y2
	Age        *int
	Gender     *string // "M" / "F"
	Confidence *float64
	Embedding  []float64 // unit-normalized
}

// RecognizedFace is a detection after the matching contract ran against
// the identity store.
type RecognizedFace struct {
	Face
	Name       string
	Similarity float64
}

// Known reports whether the face matched a registered identity.
func (f RecognizedFace) Known() bool {
	return f.Name != UnknownPerson
}
