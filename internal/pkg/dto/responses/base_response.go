package responses

// ResponseDTO is the envelope every handler writes. Message is safe to show
// to end users, Data holds the endpoint payload. Dev detail never travels in
// this struct, it stays in the logs.
type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination is attached to list endpoints. NextURL and PrevURL are paths
// ready for the client to follow.
type Pagination struct {
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	NextURL  string `json:"next_url,omitempty"`
	PrevURL  string `json:"prev_url,omitempty"`
}
