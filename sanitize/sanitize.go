// Package sanitize is the text boundary applied server-side before any
// persistence. Nothing here returns an error: inputs that fail a pattern are
// nulled to the empty string, since these are non-critical metadata fields.
package sanitize

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

// Strict policy: no tags survive, text content does.
var policy = bluemonday.StrictPolicy()

var (
	reEmail     = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	rePhoneChar = regexp.MustCompile(`[^0-9+\-() ]`)
)

// Text strips all markup from free text, unescapes what the policy encoded,
// trims, and normalizes CRLF line breaks.
func Text(s string) string {
	if s == "" {
		return ""
	}
	clean := html.UnescapeString(policy.Sanitize(s))
	return strings.ReplaceAll(strings.TrimSpace(clean), "\r\n", "\n")
}

// Email lowercases and pattern-checks; invalid addresses come back empty.
func Email(s string) string {
	clean := strings.ToLower(Text(s))
	if !reEmail.MatchString(clean) {
		return ""
	}
	return clean
}

// Phone keeps only digits, spaces and the +-() punctuation.
func Phone(s string) string {
	return rePhoneChar.ReplaceAllString(Text(s), "")
}

// URL accepts absolute http(s) URLs only; anything else comes back empty.
func URL(s string) string {
	clean := Text(s)
	if clean == "" {
		return ""
	}
	u, err := url.Parse(clean)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

// CompanyName applies Text plus the 2-100 character business rule.
func CompanyName(s string) string {
	clean := Text(s)
	if len(clean) < 2 || len(clean) > 100 {
		return ""
	}
	return clean
}

// JSON sanitizes a decoded JSON value recursively, key by key and value by
// value. Keys that sanitize to empty are dropped. Non-string leaves pass
// through untouched.
func JSON(v any) any {
	switch val := v.(type) {
	case string:
		return Text(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = JSON(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = Text(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if key := Text(k); key != "" {
				out[key] = JSON(item)
			}
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, item := range val {
			if key := Text(k); key != "" {
				out[key] = Text(item)
			}
		}
		return out
	}
	return v
}

// FileMetadata cleans the stored metadata of an uploaded file; the content
// itself never passes through here.
func FileMetadata(f model.UploadedFile) model.UploadedFile {
	f.FileName = Text(f.FileName)
	f.OriginalName = Text(f.OriginalName)
	f.MimeType = Text(f.MimeType)
	f.FilePath = Text(f.FilePath)
	return f
}
