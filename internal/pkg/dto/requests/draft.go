package requests

type OpenDraft struct {
	Kind string `json:"kind" validate:"required,oneof=template order"`
}

// SelectLab carries the new lab selection. An empty lab id clears the
// selection and everything downstream of it.
type SelectLab struct {
	LabID string `json:"lab_id"`
}

type SelectMethod struct {
	Method string `json:"method" validate:"required,oneof=testkit walk_in_test at_home_phlebotomy"`
}

type DraftDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Payor       string `json:"payor" validate:"omitempty,oneof=self relative other"`
	TemplateID  string `json:"template_id"`
}

type DraftPatient struct {
	UserID          string         `json:"user_id" validate:"required"`
	HIPAAAuthorized bool           `json:"hipaa_authorized"`
	Details         PatientDetails `json:"details" validate:"required"`
}

type PatientDetails struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	DateOfBirth string `json:"dob" validate:"required,birth_date"`
	Gender      string `json:"gender" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,phone_number"`
	Email       string `json:"email" validate:"required,email"`
	StreetLine  string `json:"street_line" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	Zip         string `json:"zip" validate:"required"`
	Country     string `json:"country" validate:"required"`
}
