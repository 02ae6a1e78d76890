package schemas

// ChatRequest carries a free-text user question about the portfolio.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse wraps the assistant's answer. On provider failure Success
// is false and Response holds a friendly degraded reply.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Query    string `json:"query"`
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}
