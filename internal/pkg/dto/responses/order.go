package responses

import "time"

type Order struct {
	ID           string `json:"id"`
	TemplateName string `json:"template_name"`
	PatientName  string `json:"patient_name"`
	Method       string `json:"method"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	// ReportAvailable is true only for completed orders; the UI hides the
	// download action otherwise.
	ReportAvailable bool `json:"report_available"`
}

type Report struct {
	OrderID     string    `json:"order_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}
