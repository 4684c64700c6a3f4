package vendordto

// Lab is a facility offering tests, as returned by GET /labs/.
type Lab struct {
	ID                string   `json:"id"`
	Slug              string   `json:"slug,omitempty"`
	Name              string   `json:"name"`
	CollectionMethods []string `json:"collection_methods"`
}

// The vendor has returned both a bare array and an enveloped list for this
// resource, so the client decodes either.
type LabList struct {
	Labs []Lab `json:"labs"`
}
