package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError pinpoints one structural problem in a stage document.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result is the outcome of validating a stage document. Warnings come
// from violated rules on optional fields and never block the pipeline.
type Result struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty"`
}

// ValidateInput checks a stage's input document against the registry.
func ValidateInput(stage Stage, input any) Result {
	return validate(input, InputRules(stage))
}

// ValidateOutput checks a stage's produced output against the registry.
// Validation is structural only; it never judges content quality.
func ValidateOutput(stage Stage, output any) Result {
	return validate(output, OutputRules(stage))
}

// MissingInputFields returns the required input paths absent from data.
func MissingInputFields(stage Stage, data any) []string {
	doc, err := toDocument(data)
	if err != nil {
		return RequiredInputFields(stage)
	}
	var missing []string
	for _, field := range RequiredInputFields(stage) {
		if _, ok := lookupPath(doc, field); !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

func validate(data any, rules []FieldRule) Result {
	doc, err := toDocument(data)
	if err != nil {
		return Result{Errors: []ValidationError{{Field: ".", Message: "document must be an object"}}}
	}

	var errs, warnings []ValidationError
	for _, rule := range rules {
		value, present := lookupPath(doc, rule.Field)
		problems := checkField(rule, value, present)
		if len(problems) == 0 {
			continue
		}
		if rule.Required {
			errs = append(errs, problems...)
		} else if present {
			warnings = append(warnings, problems...)
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs, Warnings: warnings}
}

func checkField(rule FieldRule, value any, present bool) []ValidationError {
	if !present || value == nil {
		if rule.Required {
			return []ValidationError{{Field: rule.Field, Message: "is required"}}
		}
		return nil
	}

	if rule.Kind != "" {
		actual := kindOf(value)
		if actual != rule.Kind {
			return []ValidationError{{
				Field:   rule.Field,
				Message: fmt.Sprintf("must be of type %s, got %s", rule.Kind, actual),
			}}
		}
	}

	var errs []ValidationError
	switch v := value.(type) {
	case string:
		if rule.MinLen > 0 && len(v) < rule.MinLen {
			errs = append(errs, ValidationError{rule.Field,
				fmt.Sprintf("must be at least %d characters", rule.MinLen)})
		}
		if rule.MaxLen > 0 && len(v) > rule.MaxLen {
			errs = append(errs, ValidationError{rule.Field,
				fmt.Sprintf("must be at most %d characters", rule.MaxLen)})
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(v) {
			errs = append(errs, ValidationError{rule.Field, "has invalid format"})
		}
	case float64:
		if rule.Min != nil && v < *rule.Min {
			errs = append(errs, ValidationError{rule.Field,
				fmt.Sprintf("must be at least %v", *rule.Min)})
		}
		if rule.Max != nil && v > *rule.Max {
			errs = append(errs, ValidationError{rule.Field,
				fmt.Sprintf("must be at most %v", *rule.Max)})
		}
	case []any:
		if rule.MinLen > 0 && len(v) < rule.MinLen {
			errs = append(errs, ValidationError{rule.Field,
				fmt.Sprintf("must have at least %d items", rule.MinLen)})
		}
		if rule.MaxLen > 0 && len(v) > rule.MaxLen {
			errs = append(errs, ValidationError{rule.Field,
				fmt.Sprintf("must have at most %d items", rule.MaxLen)})
		}
	}
	return errs
}

func kindOf(value any) Kind {
	switch value.(type) {
	case string:
		return KindString
	case float64:
		return KindNumber
	case bool:
		return KindBool
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return Kind(fmt.Sprintf("%T", value))
	}
}

// toDocument normalizes a typed stage record into its JSON object form so
// rules see exactly the wire shape. Maps round-trip too, normalizing
// numeric values the way the wire would.
func toDocument(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("document is not an object: %w", err)
	}
	return doc, nil
}

// lookupPath resolves a dotted path inside a JSON object.
func lookupPath(doc map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = doc
	for _, part := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
