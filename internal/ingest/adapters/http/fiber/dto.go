package fiber

// CreateMentionRequest represents a mention creation payload
// @Description Mention creation DTO
type CreateMentionRequest struct {
	Dataset   string            `json:"dataset" example:"mentions"`
	Timestamp int64             `json:"timestamp" example:"1709251200"`
	Measure   *float64          `json:"measure,omitempty" example:"3"`
	Labels    map[string]string `json:"labels"`
}

type CreateMentionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateMentionsRequest struct {
	Mentions []CreateMentionRequest `json:"mentions"`
}

type BulkCreateMentionsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_mention"`
	Message string `json:"message,omitempty" example:"invalid mention"`
}
