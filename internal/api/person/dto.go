package person

import (
	"FaceAttendance/internal/entity"
)

type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image" validate:"required"`
}

type RegisterResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	TotalRegistered int    `json:"totalRegistered"`
}

type Summary struct {
	Name             string `json:"name"`
	RegistrationDate string `json:"registrationDate"`
	Age              *int   `json:"age"`
	Gender           string `json:"gender"`
	PhotoURL         string `json:"photoUrl,omitempty"`
}

type ListResponse struct {
	Success bool      `json:"success"`
	People  []Summary `json:"people"`
	Total   int       `json:"total"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const registrationDateLayout = "2006-01-02 15:04:05"

func NewSummary(p entity.Person) Summary {
	return Summary{
		Name:             p.Name,
		RegistrationDate: p.RegisteredAt.Format(registrationDateLayout),
		Age:              p.Age,
		Gender:           GenderLabel(p.Gender),
		PhotoURL:         p.PhotoURL,
	}
}

// GenderLabel renders the engine's "M"/"F" markers for API consumers.
func GenderLabel(gender *string) string {
	if gender == nil {
		return ""
	}
	switch *gender {
	case entity.GenderMale:
		return "male"
	case entity.GenderFemale:
		return "female"
	}
	return ""
}
