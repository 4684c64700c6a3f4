package models

import "strings"

// PatientDetails is the demographic and contact record the order flow
// collects. Every field must be non-blank before an order can be submitted.
type PatientDetails struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"dob"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	StreetLine  string `json:"street_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
}

func (p PatientDetails) Complete() bool {
	fields := []string{
		p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.PhoneNumber, p.Email,
		p.StreetLine, p.City, p.State, p.Zip, p.Country,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
