package dto

type FileCreateResponse struct {
	StatusCode int    `json:"statusCode"`
	FileUri    string `json:"fileUri"`
	Message    string `json:"message"`
}
