package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

func num(v float64) *float64 { return &v }

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		q       model.Question
		v       answer.Value
		wantErr string
	}{
		{"required empty", model.Question{Type: model.TypeText, Required: true}, answer.Value{}, "This field is required"},
		{"required whitespace", model.Question{Type: model.TypeText, Required: true}, answer.Text("   "), "This field is required"},
		{"optional empty", model.Question{Type: model.TypeText}, answer.Value{}, ""},
		{"plain text", model.Question{Type: model.TypeText, Required: true}, answer.Text("Acme"), ""},
		{"below min", model.Question{Type: model.TypeText, MinLength: 3}, answer.Text("ab"), "Minimum 3 characters required"},
		{"above max", model.Question{Type: model.TypeText, MaxLength: 4}, answer.Text("abcde"), "Maximum 4 characters allowed"},
		{"default max", model.Question{Type: model.TypeText}, answer.Text(strings.Repeat("x", 501)), "Maximum 500 characters allowed"},
		{"textarea default max", model.Question{Type: model.TypeTextarea}, answer.Text(strings.Repeat("x", 2001)), "Maximum 2000 characters allowed"},
		{"textarea within", model.Question{Type: model.TypeTextarea}, answer.Text(strings.Repeat("x", 1500)), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertResult(t, Validate(tt.q, tt.v), tt.wantErr)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		q       model.Question
		v       answer.Value
		wantErr string
	}{
		{"required empty", model.Question{Type: model.TypeEmail, Required: true}, answer.Value{}, "Email is required"},
		{"optional empty", model.Question{Type: model.TypeEmail}, answer.Value{}, ""},
		{"valid", model.Question{Type: model.TypeEmail}, answer.Text("user@example.com"), ""},
		{"no at", model.Question{Type: model.TypeEmail}, answer.Text("user.example.com"), "Please enter a valid email address"},
		{"no tld", model.Question{Type: model.TypeEmail}, answer.Text("user@example"), "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertResult(t, Validate(tt.q, tt.v), tt.wantErr)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		v       answer.Value
		wantErr string
	}{
		{"valid international", answer.Text("+971 50 123 4567"), ""},
		{"letters", answer.Text("call me"), "Please enter a valid phone number"},
		{"too short", answer.Text("123456"), "Phone number is too short"},
		{"too long", answer.Text("123456789012345678901"), "Phone number is too long"},
	}
	q := model.Question{Type: model.TypePhone, Required: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertResult(t, Validate(q, tt.v), tt.wantErr)
		})
	}

	assertResult(t, Validate(q, answer.Value{}), "Phone number is required")
}

func TestValidateURL(t *testing.T) {
	q := model.Question{Type: model.TypeURL}
	assertResult(t, Validate(q, answer.Text("https://example.com")), "")
	assertResult(t, Validate(q, answer.Text("example.com")), "Please enter a valid URL")
	assertResult(t, Validate(q, answer.Text("not a url")), "Please enter a valid URL")
	assertResult(t, Validate(model.Question{Type: model.TypeURL, Required: true}, answer.Value{}), "URL is required")
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name    string
		q       model.Question
		v       answer.Value
		wantErr string
	}{
		{"not a number", model.Question{Type: model.TypeNumber}, answer.Text("abc"), "Please enter a valid number"},
		{"in range", model.Question{Type: model.TypeNumber, Min: num(1), Max: num(10)}, answer.Text("5"), ""},
		{"below range", model.Question{Type: model.TypeNumber, Min: num(1), Max: num(10)}, answer.Text("0"), "Number must be between 1 and 10"},
		{"above range", model.Question{Type: model.TypeNumber, Min: num(1), Max: num(10)}, answer.Text("11"), "Number must be between 1 and 10"},
		{"min only", model.Question{Type: model.TypeNumber, Min: num(50)}, answer.Text("49"), "Number must be at least 50"},
		{"max only", model.Question{Type: model.TypeNumber, Max: num(500)}, answer.Text("501"), "Number must be at most 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertResult(t, Validate(tt.q, tt.v), tt.wantErr)
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	q := model.Question{Type: model.TypeCurrency}
	assertResult(t, Validate(q, answer.Text("1000")), "")
	assertResult(t, Validate(q, answer.Text("0")), "")
	assertResult(t, Validate(q, answer.Text("-1")), "Amount cannot be negative")
	assertResult(t, Validate(q, answer.Text("lots")), "Please enter a valid amount")
	assertResult(t, Validate(model.Question{Type: model.TypeCurrency, Required: true}, answer.Value{}), "Amount is required")
}

func TestValidatePercentage(t *testing.T) {
	q := model.Question{Type: model.TypePercentage}
	assertResult(t, Validate(q, answer.Text("0")), "")
	assertResult(t, Validate(q, answer.Text("100")), "")
	assertResult(t, Validate(q, answer.Text("100.01")), "Percentage must be between 0 and 100")
	assertResult(t, Validate(q, answer.Text("-0.01")), "Percentage must be between 0 and 100")
}

func TestValidateBoolean(t *testing.T) {
	q := model.Question{Type: model.TypeBoolean, Required: true}
	assertResult(t, Validate(q, answer.Text("true")), "")
	assertResult(t, Validate(q, answer.Text("false")), "")
	assertResult(t, Validate(q, answer.Text("maybe")), "Please make a selection")
	assertResult(t, Validate(q, answer.Value{}), "Please make a selection")
}

func TestValidateSelections(t *testing.T) {
	tests := []struct {
		name    string
		q       model.Question
		v       answer.Value
		wantErr string
	}{
		{"required empty", model.Question{Type: model.TypeCheckbox, Required: true}, answer.Value{}, "Please select at least one option"},
		{"optional empty", model.Question{Type: model.TypeCheckbox}, answer.Value{}, ""},
		{"at min boundary", model.Question{Type: model.TypeCheckbox, MinSelections: 2}, answer.List("a", "b"), ""},
		{"below min", model.Question{Type: model.TypeCheckbox, MinSelections: 2}, answer.List("a"), "Select at least 2 options"},
		{"above max", model.Question{Type: model.TypeCheckbox, MaxSelections: 2}, answer.List("a", "b", "c"), "Select at most 2 options"},
		{"outside both", model.Question{Type: model.TypeCheckbox, MinSelections: 2, MaxSelections: 3}, answer.List("a"), "Select between 2 and 3 options"},
		{"ranking uses same rule", model.Question{Type: model.TypeRanking, MinSelections: 3}, answer.List("a", "b"), "Select at least 3 options"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertResult(t, Validate(tt.q, tt.v), tt.wantErr)
		})
	}
}

func TestValidateDate(t *testing.T) {
	q := model.Question{Type: model.TypeDate, Required: true}
	assertResult(t, Validate(q, answer.Value{}), "Please select a valid date")
	assertResult(t, Validate(q, answer.Text("not-a-date")), "Please select a valid date")
	assertResult(t, Validate(q, answer.Text("2020-01-15")), "")
	assertResult(t, Validate(q, answer.Text("2020-01-15T10:30:00Z")), "")
}

func TestValidateDateFutureRule(t *testing.T) {
	defer func() { timeNow = time.Now }()
	timeNow = func() time.Time {
		return time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	}

	eventDate := model.Question{ID: 8, Type: model.TypeDate, Required: true}

	assertResult(t, Validate(eventDate, answer.Text("2026-08-27")), "Date must be in the future")
	// same-day counts as future regardless of time of day
	assertResult(t, Validate(eventDate, answer.Text("2026-08-28")), "")
	assertResult(t, Validate(eventDate, answer.Text("2026-09-01")), "")

	// past dates are fine for ids without the rule
	plain := model.Question{ID: 99, Type: model.TypeDate, Required: true}
	assertResult(t, Validate(plain, answer.Text("2020-01-01")), "")
}

func TestValidateDateRange(t *testing.T) {
	q := model.Question{Type: model.TypeDateRange, Required: true}

	assertResult(t, Validate(q, answer.Value{}), "Both start and end dates are required")
	assertResult(t, Validate(q, answer.Record(map[string]string{"startDate": "2026-09-01"})), "Both start and end dates are required")
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"startDate": "2026-09-01", "endDate": "2026-09-03",
	})), "")
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"startDate": "2026-09-03", "endDate": "2026-09-01",
	})), "End date must be after start date")
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"startDate": "bad", "endDate": "2026-09-01",
	})), "Please select a valid date")
}

func TestValidateMultiField(t *testing.T) {
	q := model.Question{
		Type: model.TypeMultiField,
		Fields: []model.MultiField{
			{ID: "name", Label: "Name", Type: model.TypeText, Required: true},
			{ID: "email", Label: "Email", Type: model.TypeEmail},
			{ID: "date", Label: "Date", Type: model.TypeDate},
		},
	}

	assertResult(t, Validate(q, answer.Record(map[string]string{"name": "Sam"})), "")
	assertResult(t, Validate(q, answer.Record(map[string]string{"name": ""})), "Name is required")
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"name": "Sam", "email": "bad",
	})), "Email must be a valid email")
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"name": "Sam", "date": "nope",
	})), "Date must be a valid date")
}

func TestValidateMatrix(t *testing.T) {
	q := model.Question{
		Type:     model.TypeMatrix,
		Required: true,
		Rows:     []string{"Stage", "Lounge"},
	}

	assertResult(t, Validate(q, answer.Record(map[string]string{"Stage": "no"})), "Please answer all rows")
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"Stage": "no", "Lounge": "no",
	})), "")
	// "yes" matching is case-insensitive
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"Stage": "no", "Lounge": "Yes",
	})), "Please specify quantity for all items marked as 'Yes'")
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"Stage": "no", "Lounge": "yes", "Lounge_quantity": "0",
	})), "Please specify quantity for all items marked as 'Yes'")
	assertResult(t, Validate(q, answer.Record(map[string]string{
		"Stage": "no", "Lounge": "yes", "Lounge_quantity": "2",
	})), "")
}

func TestValidateSignature(t *testing.T) {
	q := model.Question{Type: model.TypeSignature, Required: true}
	assertResult(t, Validate(q, answer.Value{}), "Signature is required")
	assertResult(t, Validate(q, answer.Text("scribble")), "Signature is required")
	assertResult(t, Validate(q, answer.Text("data:image/png;base64,iVBOR")), "")
}

func TestValidateUnknownTypeFallsBack(t *testing.T) {
	q := model.Question{Type: "holographic", Required: true}
	assertResult(t, Validate(q, answer.Value{}), "This field is required")
	assertResult(t, Validate(q, answer.Text("anything")), "")
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"10MB", 10 << 20, true},
		{"10", 10 << 20, true},
		{"512KB", 512 << 10, true},
		{"1GB", 1 << 30, true},
		{"2.5MB", int64(2.5 * (1 << 20)), true},
		{" 10 mb ", 10 << 20, true},
		{"huge", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSize(tt.in)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateFiles(t *testing.T) {
	q := model.Question{
		Type:     model.TypeFileUpload,
		Required: true,
		Accept:   ".pdf,.png",
		MaxSize:  "10MB",
	}

	assertResult(t, ValidateFiles(q, nil), "Please upload at least one file")
	assertResult(t, ValidateFiles(model.Question{Type: model.TypeFileUpload}, nil), "")

	assertResult(t, ValidateFiles(q, []model.FileMeta{
		{Name: "brief.pdf", Size: 1 << 20},
	}), "")
	assertResult(t, ValidateFiles(q, []model.FileMeta{
		{Name: "brief.pdf", Size: 11 << 20},
	}), "File size must be less than 10MB")
	assertResult(t, ValidateFiles(q, []model.FileMeta{
		{Name: "notes.docx", Size: 1 << 20},
	}), "Only .pdf,.png files are allowed")
	// extension match is case-insensitive
	assertResult(t, ValidateFiles(q, []model.FileMeta{
		{Name: "LOGO.PNG", Size: 1 << 20},
	}), "")
}

func TestValidateRoutesFileTypes(t *testing.T) {
	q := model.Question{Type: model.TypeVideoUpload, Required: true}
	assertResult(t, Validate(q, answer.Text("ignored")), "Please upload at least one file")
}

func TestValidateSection(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Type: model.TypeText, Required: true},
		{ID: 2, Type: model.TypeEmail, Required: true},
		{ID: 3, Type: model.TypeFileUpload, Required: true},
	}
	answers := map[int]answer.Value{
		2: answer.Text("bad-email"),
	}
	files := map[int][]model.FileMeta{
		3: {{Name: "brief.pdf", Size: 100}},
	}

	failures, err := ValidateSection(questions, answers, files)
	require.Error(t, err)
	assert.Len(t, failures, 2)
	assert.Equal(t, "This field is required", failures[1])
	assert.Equal(t, "Please enter a valid email address", failures[2])

	answers[1] = answer.Text("Acme")
	answers[2] = answer.Text("team@acme.com")
	failures, err = ValidateSection(questions, answers, files)
	assert.NoError(t, err)
	assert.Empty(t, failures)
}

func assertResult(t *testing.T, res Result, wantErr string) {
	t.Helper()
	if wantErr == "" {
		assert.True(t, res.IsValid, "unexpected error: %s", res.Error)
		assert.Empty(t, res.Error)
	} else {
		assert.False(t, res.IsValid)
		assert.Equal(t, wantErr, res.Error)
	}
}
