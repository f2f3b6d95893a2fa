package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Acme Events", "Acme Events"},
		{"strips tags", "<script>alert(1)</script>hello", "hello"},
		{"keeps inner text", "<b>bold</b> move", "bold move"},
		{"trims", "  padded  ", "padded"},
		{"normalizes crlf", "line one\r\nline two", "line one\nline two"},
		{"unescapes entities", "Tom &amp; Jerry", "Tom & Jerry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "sam@acme.com", Email("Sam@Acme.COM"))
	assert.Equal(t, "sam@acme.com", Email("  sam@acme.com  "))
	assert.Equal(t, "", Email("not-an-email"))
	assert.Equal(t, "", Email("sam@acme"))
	assert.Equal(t, "", Email(""))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+971 50 123 4567", Phone("+971 50 123 4567"))
	assert.Equal(t, "(02) 123-4567", Phone("(02) 123-4567"))
	assert.Equal(t, "+97150", Phone("tel:+97150"))
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://example.com/page", URL("https://example.com/page"))
	assert.Equal(t, "http://example.com", URL("http://example.com"))
	assert.Equal(t, "", URL("ftp://example.com"))
	assert.Equal(t, "", URL("javascript:alert(1)"))
	assert.Equal(t, "", URL("example.com"))
	assert.Equal(t, "", URL(""))
}

func TestCompanyName(t *testing.T) {
	assert.Equal(t, "Acme", CompanyName("Acme"))
	assert.Equal(t, "", CompanyName("A"))
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	assert.Equal(t, "", CompanyName(string(long)))
}

func TestJSON(t *testing.T) {
	in := map[string]any{
		"<b>key</b>": "<i>value</i>",
		"list":       []any{"<u>a</u>", 42},
		"nested":     map[string]any{"k": "v"},
		"<script>":   "dropped key",
		"count":      7,
	}
	got := JSON(in).(map[string]any)

	assert.Equal(t, "value", got["key"])
	assert.Equal(t, []any{"a", 42}, got["list"])
	assert.Equal(t, map[string]any{"k": "v"}, got["nested"])
	assert.Equal(t, 7, got["count"])
	// a key sanitizing to empty disappears with its value
	_, ok := got["<script>"]
	assert.False(t, ok)
	assert.NotContains(t, got, "")
}

func TestJSONStringShapes(t *testing.T) {
	assert.Equal(t, "clean", JSON("<p>clean</p>"))
	assert.Equal(t, []string{"a", "b"}, JSON([]string{"<i>a</i>", "b"}))
	assert.Equal(t, map[string]string{"k": "v"}, JSON(map[string]string{"k": "<b>v</b>"}))
	assert.Equal(t, 42, JSON(42))
	assert.Nil(t, JSON(nil))
}

func TestFileMetadata(t *testing.T) {
	f := FileMetadata(model.UploadedFile{
		QuestionID:   12,
		FileName:     "abc123.pdf",
		OriginalName: "<b>brief</b>.pdf",
		FileSize:     1024,
		MimeType:     "application/pdf",
		FilePath:     "uploads/abc123.pdf",
	})
	assert.Equal(t, 12, f.QuestionID)
	assert.Equal(t, "brief.pdf", f.OriginalName)
	assert.Equal(t, int64(1024), f.FileSize)
	assert.Equal(t, "application/pdf", f.MimeType)
}
