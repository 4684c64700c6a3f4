package vendordto

// ErrorEnvelope is the vendor's error body. Either field may carry the
// human-readable message depending on the endpoint.
type ErrorEnvelope struct {
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorEnvelope) FirstMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}
