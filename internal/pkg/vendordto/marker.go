package vendordto

// Marker is a single measurable analyte. Every marker belongs to exactly one
// lab.
type Marker struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LabID       string `json:"lab_id"`
}

type MarkerList struct {
	Markers []Marker `json:"markers"`
}
