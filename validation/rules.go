package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

var (
	rePhone = regexp.MustCompile(`^[+]?[\d\s()-]+$`)
	reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

func validateText(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		if q.Required {
			return invalid("This field is required")
		}
		return valid()
	}

	min, max := q.MinLength, q.MaxLength
	if min == 0 {
		min = defaultTextMin
	}
	if max == 0 {
		max = defaultTextMax
		if q.Type == model.TypeTextarea {
			max = defaultTextareaMax
		}
	}
	if len(s) < min {
		return invalid(fmt.Sprintf("Minimum %d characters required", min))
	}
	if len(s) > max {
		return invalid(fmt.Sprintf("Maximum %d characters allowed", max))
	}
	return valid()
}

func validateEmail(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		if q.Required {
			return invalid("Email is required")
		}
		return valid()
	}
	if !reEmail.MatchString(s) {
		return invalid("Please enter a valid email address")
	}
	return valid()
}

func validatePhone(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		if q.Required {
			return invalid("Phone number is required")
		}
		return valid()
	}
	if !rePhone.MatchString(s) {
		return invalid("Please enter a valid phone number")
	}

	min, max := q.MinLength, q.MaxLength
	if min == 0 {
		min = defaultPhoneMin
	}
	if max == 0 {
		max = defaultPhoneMax
	}
	if len(s) < min {
		return invalid("Phone number is too short")
	}
	if len(s) > max {
		return invalid("Phone number is too long")
	}
	return valid()
}

func validateURL(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		if q.Required {
			return invalid("URL is required")
		}
		return valid()
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return invalid("Please enter a valid URL")
	}
	return valid()
}

func validateNumber(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		if q.Required {
			return invalid("This field is required")
		}
		return valid()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return invalid("Please enter a valid number")
	}

	switch {
	case q.Min != nil && q.Max != nil:
		if n < *q.Min || n > *q.Max {
			return invalid(fmt.Sprintf("Number must be between %g and %g", *q.Min, *q.Max))
		}
	case q.Min != nil:
		if n < *q.Min {
			return invalid(fmt.Sprintf("Number must be at least %g", *q.Min))
		}
	case q.Max != nil:
		if n > *q.Max {
			return invalid(fmt.Sprintf("Number must be at most %g", *q.Max))
		}
	}
	return valid()
}

func validateCurrency(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		if q.Required {
			return invalid("Amount is required")
		}
		return valid()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return invalid("Please enter a valid amount")
	}
	if n < 0 {
		return invalid("Amount cannot be negative")
	}
	return valid()
}

func validatePercentage(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		if q.Required {
			return invalid("Percentage is required")
		}
		return valid()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return invalid("Please enter a valid percentage")
	}
	if n < 0 || n > 100 {
		return invalid("Percentage must be between 0 and 100")
	}
	return valid()
}

func validateChoice(q model.Question, v answer.Value) Result {
	if q.Required && v.IsEmpty() {
		return invalid("Please select an option")
	}
	return valid()
}

func validateRating(q model.Question, v answer.Value) Result {
	if q.Required && v.IsEmpty() {
		return invalid("Please select a rating")
	}
	return valid()
}

func validateSlider(q model.Question, v answer.Value) Result {
	if q.Required && v.IsEmpty() {
		return invalid("Please select a value")
	}
	return valid()
}

func validateBoolean(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if q.Required && s != "true" && s != "false" {
		return invalid("Please make a selection")
	}
	return valid()
}

func validateSelections(q model.Question, v answer.Value) Result {
	items := v.List()
	if len(items) == 0 {
		if q.Required {
			return invalid("Please select at least one option")
		}
		return valid()
	}

	min, max := q.MinSelections, q.MaxSelections
	if (min > 0 && len(items) < min) || (max > 0 && len(items) > max) {
		switch {
		case min > 0 && max > 0:
			return invalid(fmt.Sprintf("Select between %d and %d options", min, max))
		case min > 0:
			return invalid(fmt.Sprintf("Select at least %d options", min))
		default:
			return invalid(fmt.Sprintf("Select at most %d options", max))
		}
	}
	return valid()
}

func validateDate(q model.Question, v answer.Value) Result {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		if q.Required {
			return invalid("Please select a valid date")
		}
		return valid()
	}
	t, ok := parseDate(s)
	if !ok {
		return invalid("Please select a valid date")
	}
	if futureDated[q.ID] && dateOnly(t).Before(dateOnly(timeNow())) {
		return invalid("Date must be in the future")
	}
	return valid()
}

func validateDateRange(q model.Question, v answer.Value) Result {
	start := strings.TrimSpace(v.Get("startDate"))
	end := strings.TrimSpace(v.Get("endDate"))

	if q.Required && (start == "" || end == "") {
		return invalid("Both start and end dates are required")
	}
	if start == "" || end == "" {
		return valid()
	}

	startT, okStart := parseDate(start)
	endT, okEnd := parseDate(end)
	if !okStart || !okEnd {
		return invalid("Please select a valid date")
	}
	if endT.Before(startT) {
		return invalid("End date must be after start date")
	}
	return valid()
}

func validateMultiField(q model.Question, v answer.Value) Result {
	for _, field := range q.Fields {
		s := strings.TrimSpace(v.Get(field.ID))
		if s == "" {
			if field.Required {
				return invalid(fmt.Sprintf("%s is required", field.Label))
			}
			continue
		}

		switch field.Type {
		case model.TypeEmail:
			if !reEmail.MatchString(s) {
				return invalid(fmt.Sprintf("%s must be a valid email", field.Label))
			}
		case model.TypeDate:
			if _, ok := parseDate(s); !ok {
				return invalid(fmt.Sprintf("%s must be a valid date", field.Label))
			}
		}
	}
	return valid()
}

func validateMatrix(q model.Question, v answer.Value) Result {
	record := v.Record()

	if q.Required {
		answered := 0
		for key := range record {
			if !strings.HasSuffix(key, "_quantity") {
				answered++
			}
		}
		if answered != len(q.Rows) {
			return invalid("Please answer all rows")
		}
	}

	// Every row marked yes needs a non-empty, non-zero quantity companion.
	for key, value := range record {
		if strings.HasSuffix(key, "_quantity") {
			continue
		}
		if !strings.EqualFold(value, "yes") {
			continue
		}
		quantity := record[key+"_quantity"]
		if quantity == "" || quantity == "0" {
			return invalid("Please specify quantity for all items marked as 'Yes'")
		}
	}
	return valid()
}

// signaturePrefix is the canonical embedded-image prefix of serialized
// signature and drawing strokes.
const signaturePrefix = "data:image/"

func validateSignature(q model.Question, v answer.Value) Result {
	s := v.Text()
	if q.Required && !strings.HasPrefix(s, signaturePrefix) {
		return invalid("Signature is required")
	}
	return valid()
}

func validateDefault(q model.Question, v answer.Value) Result {
	if q.Required && v.IsEmpty() {
		return invalid("This field is required")
	}
	return valid()
}
