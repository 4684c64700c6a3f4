package vendordto

// Template is a named, reusable bundle of markers tied to an owning lab and a
// collection method, as stored behind POST /tests/ and PUT /tests/{id}/.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Method      string   `json:"method"`
	LabID       string   `json:"lab_id"`
	MarkerIDs   []string `json:"marker_ids,omitempty"`
	Markers     []Marker `json:"tests,omitempty"`
}

type TemplateList struct {
	Templates []Template `json:"tests"`
}

type TemplatePayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Method      string   `json:"method"`
	MarkerIDs   []string `json:"marker_ids"`
	LabID       string   `json:"lab_id"`
}
