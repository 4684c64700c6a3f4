package utils

import (
	"labdash-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPatientRequest() requests.PatientDetails {
	return requests.PatientDetails{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1990-12-10",
		Gender:      "female",
		PhoneNumber: "+15551234567",
		Email:       "ada@example.com",
		StreetLine:  "1 Analytical Way",
		City:        "London",
		State:       "LDN",
		Zip:         "12345",
		Country:     "GB",
	}
}

func TestValidateStruct_PatientDetails(t *testing.T) {
	t.Run("Complete details pass", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validPatientRequest()))
	})

	t.Run("Birth date must be YYYY-MM-DD", func(t *testing.T) {
		request := validPatientRequest()
		request.DateOfBirth = "10/12/1990"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Phone number must be E.164-like", func(t *testing.T) {
		request := validPatientRequest()
		request.PhoneNumber = "not-a-number"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Email is checked", func(t *testing.T) {
		request := validPatientRequest()
		request.Email = "ada-at-example"
		assert.Error(t, ValidateStruct(request))
	})
}
