package vendordto

type PatientDetails struct {
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	DateOfBirth string         `json:"dob"`
	Gender      string         `json:"gender"`
	PhoneNumber string         `json:"phone_number"`
	Email       string         `json:"email"`
	Address     PatientAddress `json:"address"`
}

type PatientAddress struct {
	FirstLine string `json:"first_line"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

type Order struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	LabTest        Template       `json:"lab_test"`
	PatientDetails PatientDetails `json:"patient_details"`
	Method         string         `json:"method"`
	Status         string         `json:"status"`
	CreatedAt      string         `json:"created_at"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type OrderPayload struct {
	UserID          string         `json:"user_id"`
	TemplateID      string         `json:"lab_test_id"`
	Method          string         `json:"method"`
	Payor           string         `json:"payor,omitempty"`
	PatientDetails  PatientDetails `json:"patient_details"`
	PhysicianAuthed bool           `json:"hipaa_authorization"`
}
