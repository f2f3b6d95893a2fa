package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

var reSize = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*(KB|MB|GB)?$`)

// ParseSize converts a human size string like "10MB" to bytes. A bare number
// is read as megabytes, matching how upload limits are declared in the
// catalog.
func ParseSize(s string) (int64, bool) {
	m := reSize.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "KB":
		n *= 1 << 10
	case "GB":
		n *= 1 << 30
	default: // MB
		n *= 1 << 20
	}
	return int64(n), true
}

// ValidateFiles checks a file-typed question's answer: required means a
// non-empty list, every file must fit the declared max size, and every
// extension must be in the declared accept list.
func ValidateFiles(q model.Question, files []model.FileMeta) Result {
	if len(files) == 0 {
		if q.Required {
			return invalid("Please upload at least one file")
		}
		return valid()
	}

	if q.MaxSize != "" {
		maxBytes, ok := ParseSize(q.MaxSize)
		if ok {
			for _, f := range files {
				if f.Size > maxBytes {
					return invalid(fmt.Sprintf("File size must be less than %s", q.MaxSize))
				}
			}
		}
	}

	if q.Accept != "" {
		accepted := map[string]bool{}
		for _, ext := range strings.Split(q.Accept, ",") {
			accepted[strings.ToLower(strings.TrimSpace(ext))] = true
		}
		for _, f := range files {
			ext := strings.ToLower(filepath.Ext(f.Name))
			if !accepted[ext] {
				return invalid(fmt.Sprintf("Only %s files are allowed", q.Accept))
			}
		}
	}
	return valid()
}
