package models

type ExtractResponse struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
}

type AnalysisResponse struct {
	ID        string `json:"id"`
	Analysis  string `json:"analysis"`
	PageCount int    `json:"page_count"`
}

type CareerResponse struct {
	Suggestions string `json:"suggestions"`
	Fallback    bool   `json:"fallback"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
