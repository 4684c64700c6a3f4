package responses

type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Method      string   `json:"method"`
	LabID       string   `json:"lab_id"`
	Markers     []Marker `json:"markers,omitempty"`
}
