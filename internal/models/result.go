package models

type TextRequest struct {
	Text string `json:"text"`
}

type SessionResponse struct {
	ID string `json:"id"`
}

type AnalyzeResponse struct {
	ID          string `json:"id"`
	IsAnalyzing bool   `json:"is_analyzing"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	Characters   int    `json:"characters"`
	PageCount    int    `json:"page_count,omitempty"`
}
