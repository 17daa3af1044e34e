package entity

import "time"

// Person is a registered identity. Embedding is internal matching state and
// must never be serialized outside the recognition boundary.
type Person struct {
	Name         string    `json:"name"`
	Embedding    []float64 `json:"-"`
	Age          *int      `json:"age"`
	Gender       *string   `json:"gender"`
	RegisteredAt time.Time `json:"registrationDate"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
}

const (
	GenderMale   = "M"
	GenderFemale = "F"
)
