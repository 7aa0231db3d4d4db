package models

import "io"

// UploadedDocument is a PDF stream owned by the caller for one request.
type UploadedDocument struct {
	Reader       io.ReadCloser
	OriginalName string
	Size         int64
}

func (d *UploadedDocument) Close() error {
	if d == nil || d.Reader == nil {
		return nil
	}
	return d.Reader.Close()
}

// AnalysisRequest is sent to the generative model as three ordered parts.
type AnalysisRequest struct {
	Instruction string
	ResumeText  string
	Prompt      string
}

type CareerRequest struct {
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
}
