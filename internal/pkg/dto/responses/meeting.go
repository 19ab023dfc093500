package responses

// Meeting is the conferencing provider's answer to a provisioning request.
type Meeting struct {
	JoinURL  string `json:"join_url"`
	Password string `json:"password,omitempty"`
}
