package model

// SubmissionAnswer is one answer record on the wire. Exactly one of TextValue
// and JSONValue is populated: scalar answers travel as TextValue, structured
// ones (arrays, records) as JSONValue.
type SubmissionAnswer struct {
	QuestionID   int     `json:"questionId"`
	QuestionType string  `json:"questionType"`
	Section      string  `json:"section"`
	TextValue    *string `json:"textValue"`
	JSONValue    any     `json:"jsonValue"`
}

// UploadedFile registers file metadata against a submission. Content is
// uploaded through the file endpoint, which fills in FileName and FilePath.
type UploadedFile struct {
	QuestionID   int    `json:"questionId"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	FileSize     int64  `json:"fileSize"`
	MimeType     string `json:"mimeType"`
	FilePath     string `json:"filePath"`
}

// SubmissionRequest is the finalized payload handed to the submission gateway.
type SubmissionRequest struct {
	QuestionnaireID string             `json:"questionnaireId"`
	CompanyName     string             `json:"companyName,omitempty"`
	ContactPerson   string             `json:"contactPerson,omitempty"`
	Email           string             `json:"email,omitempty"`
	Industry        string             `json:"industry,omitempty"`
	Answers         []SubmissionAnswer `json:"answers"`
	UploadedFiles   []UploadedFile     `json:"uploadedFiles"`
	IsComplete      bool               `json:"isComplete"`
}

type SubmissionResponse struct {
	Success      bool   `json:"success"`
	SubmissionID string `json:"submissionId"`
	Message      string `json:"message"`
}

// DraftRequest is the partial-save payload. When DraftID is set the save is an
// idempotent upsert, otherwise a new draft row is created.
type DraftRequest struct {
	QuestionnaireID string             `json:"questionnaireId"`
	CompanyName     string             `json:"companyName,omitempty"`
	ContactPerson   string             `json:"contactPerson,omitempty"`
	Email           string             `json:"email,omitempty"`
	Industry        string             `json:"industry,omitempty"`
	Answers         []SubmissionAnswer `json:"answers"`
	DraftID         string             `json:"draftId,omitempty"`
}

type DraftResponse struct {
	Success bool   `json:"success"`
	DraftID string `json:"draftId"`
	Message string `json:"message"`
}
