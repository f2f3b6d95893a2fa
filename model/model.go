package model

import "time"

// Question type tags. Validation and rendering dispatch on these; anything
// else falls through to the default handlers.
const (
	TypeText           = "text"
	TypeTextarea       = "textarea"
	TypeEmail          = "email"
	TypePhone          = "phone"
	TypeURL            = "url"
	TypeNumber         = "number"
	TypeCurrency       = "currency"
	TypePercentage     = "percentage"
	TypeSelect         = "select"
	TypeMultipleChoice = "multiple-choice"
	TypeCheckbox       = "checkbox"
	TypeDate           = "date"
	TypeDateRange      = "date-range"
	TypeTime           = "time"
	TypeBoolean        = "boolean"
	TypeColor          = "color"
	TypeRating         = "rating"
	TypeStarRating     = "star-rating"
	TypeEmojiRating    = "emoji-rating"
	TypeSlider         = "slider"
	TypeLikertScale    = "likert-scale"
	TypeRanking        = "ranking"
	TypeMatrix         = "matrix"
	TypeAddress        = "address"
	TypeSignature      = "signature"
	TypeDrawing        = "drawing"
	TypeFileUpload     = "file-upload"
	TypeVideoUpload    = "video-upload"
	TypeMultiField     = "multi-field"
)

// Question is one entry of the static question catalog. The constraint fields
// beyond Required are type-specific; irrelevant ones stay at their zero value.
type Question struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder,omitempty"`
	HelpText    string `json:"helpText,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Section     string `json:"section,omitempty"`

	// text, textarea, phone
	MinLength int `json:"minLength,omitempty"`
	MaxLength int `json:"maxLength,omitempty"`

	// select, multiple-choice, checkbox, ranking
	Options       []string `json:"options,omitempty"`
	MinSelections int      `json:"minSelections,omitempty"`
	MaxSelections int      `json:"maxSelections,omitempty"`

	// number, percentage, rating, slider
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`
	Unit string   `json:"unit,omitempty"`

	// currency
	Currency string `json:"currency,omitempty"`

	// boolean
	TrueLabel  string `json:"trueLabel,omitempty"`
	FalseLabel string `json:"falseLabel,omitempty"`

	// likert-scale
	ScaleLabels []string `json:"scaleLabels,omitempty"`

	// date-range
	StartLabel string `json:"startLabel,omitempty"`
	EndLabel   string `json:"endLabel,omitempty"`

	// matrix
	Rows    []string `json:"rows,omitempty"`
	Columns []string `json:"columns,omitempty"`

	// multi-field
	Fields []MultiField `json:"fields,omitempty"`

	// file-upload, video-upload
	Accept   string `json:"accept,omitempty"`
	Multiple bool   `json:"multiple,omitempty"`
	MaxSize  string `json:"maxSize,omitempty"`
}

// MultiField is one sub-field of a multi-field question. Each sub-field is
// validated by its own declared type against the matching record key.
type MultiField struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// FileMeta is a client-side file handle: name, size and MIME type only.
// Content travels through the upload endpoint, never through answer state.
type FileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Submission is the admin read model of one persisted questionnaire pass.
type Submission struct {
	ID              string             `json:"id"`
	QuestionnaireID string             `json:"questionnaireId"`
	CompanyName     string             `json:"companyName,omitempty"`
	ContactPerson   string             `json:"contactPerson,omitempty"`
	Email           string             `json:"email,omitempty"`
	Industry        string             `json:"industry,omitempty"`
	IsComplete      bool               `json:"isComplete"`
	SubmittedAt     *time.Time         `json:"submittedAt,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	Answers         []SubmissionAnswer `json:"answers"`
	UploadedFiles   []UploadedFile     `json:"uploadedFiles"`
}

// Stats are the aggregate counters shown on the admin dashboard.
type Stats struct {
	TotalSubmissions     int `json:"totalSubmissions"`
	CompletedSubmissions int `json:"completedSubmissions"`
	RecentSubmissions    int `json:"recentSubmissions"`
	CompletionRate       int `json:"completionRate"`
}
