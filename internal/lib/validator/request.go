package validator

import (
	"fmt"
	"regexp"
)

// Violation messages are part of the public API contract and are surfaced
// to clients verbatim.
const (
	MsgFieldMissing = "This field is missing."
	MsgNotBlank     = "This value should not be blank."
	MsgNotValid     = "This value is not valid."
)

func MsgWrongType(typeName string) string {
	return fmt.Sprintf("This value should be of type %s.", typeName)
}

func MsgMinCount(min int) string {
	if min == 1 {
		return "This collection should contain 1 element or more."
	}
	return fmt.Sprintf("This collection should contain %d elements or more.", min)
}

// ValidationError carries every field violation found in a request,
// keyed by field name with messages in rule evaluation order.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request validation failed on %d field(s)", len(e.Fields))
}

// Rule checks a single present value and reports zero or more violations.
// Rules never short-circuit each other: a field collects messages from
// every rule that fails.
type Rule func(value any) []string

type Field struct {
	Name string
	// Optional fields produce no violation when absent or explicitly null.
	Optional bool
	Rules    []Rule
	// Sub validates the value as a nested mapping. Sub-field violations
	// are reported under "<parent>.<child>" keys.
	Sub Schema
}

// Schema is an ordered field list: evaluation (and therefore message)
// order is the declaration order. Request keys outside the schema are
// ignored.
type Schema []Field

// Validate evaluates every rule of every field independently and returns
// the aggregated violations, or nil when the request is valid. It is a
// pure function of its input.
func (s Schema) Validate(req map[string]any) map[string][]string {
	violations := make(map[string][]string)
	for _, field := range s {
		value, present := req[field.Name]
		if !present || (field.Optional && value == nil) {
			if !field.Optional && !present {
				violations[field.Name] = []string{MsgFieldMissing}
			}
			continue
		}
		for _, rule := range field.Rules {
			if msgs := rule(value); len(msgs) > 0 {
				violations[field.Name] = append(violations[field.Name], msgs...)
			}
		}
		if field.Sub != nil {
			if mapping, ok := value.(map[string]any); ok {
				for name, msgs := range field.Sub.Validate(mapping) {
					violations[field.Name+"."+name] = msgs
				}
			} else {
				violations[field.Name] = append(violations[field.Name], MsgWrongType("array"))
			}
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return violations
}

func NotBlank(value any) []string {
	if value == nil {
		return []string{MsgNotBlank}
	}
	if s, ok := value.(string); ok && s == "" {
		return []string{MsgNotBlank}
	}
	return nil
}

// IsString reports a type violation for any non-null value that is not
// a string. Null is left for NotBlank to judge.
func IsString(value any) []string {
	if value == nil {
		return nil
	}
	if _, ok := value.(string); !ok {
		return []string{MsgWrongType("string")}
	}
	return nil
}

// IsFloat accepts any JSON number (decoded as float64). Null is treated
// as an absent value, never as a type violation.
func IsFloat(value any) []string {
	if value == nil {
		return nil
	}
	if _, ok := value.(float64); !ok {
		return []string{MsgWrongType("float")}
	}
	return nil
}

func IsArray(value any) []string {
	if value == nil {
		return nil
	}
	if _, ok := value.([]any); !ok {
		return []string{MsgWrongType("array")}
	}
	return nil
}

// Matches checks a purely lexical, unanchored pattern. Values that are
// not strings are left for the type rule to report; empty strings fail
// the pattern like any other non-matching value.
func Matches(pattern *regexp.Regexp) Rule {
	return func(value any) []string {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if !pattern.MatchString(s) {
			return []string{MsgNotValid}
		}
		return nil
	}
}

func MinCount(min int) Rule {
	return func(value any) []string {
		items, ok := value.([]any)
		if !ok {
			return nil
		}
		if len(items) < min {
			return []string{MsgMinCount(min)}
		}
		return nil
	}
}

// Each applies rules to every element of a sequence, in input order,
// folding element violations into the collection field's message list.
func Each(rules ...Rule) Rule {
	return func(value any) []string {
		items, ok := value.([]any)
		if !ok {
			return nil
		}
		var msgs []string
		for _, item := range items {
			for _, rule := range rules {
				msgs = append(msgs, rule(item)...)
			}
		}
		return msgs
	}
}
