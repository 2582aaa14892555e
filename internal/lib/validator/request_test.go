package validator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaCollectsViolationsInRuleOrder(t *testing.T) {
	schema := Schema{
		{Name: "title", Rules: []Rule{NotBlank, IsString, Matches(regexp.MustCompile(`^\w+$`))}},
	}
	violations := schema.Validate(map[string]any{"title": ""})
	assert.Equal(t, map[string][]string{"title": {MsgNotBlank, MsgNotValid}}, violations)
}

func TestSchemaIgnoresUnknownKeys(t *testing.T) {
	schema := Schema{{Name: "title", Rules: []Rule{NotBlank}}}
	assert.Nil(t, schema.Validate(map[string]any{"title": "ok", "extra": 1}))
}

func TestNestedMappingViolationsUseDottedKeys(t *testing.T) {
	schema := Schema{
		{Name: "scores", Sub: Schema{
			{Name: "avg", Optional: true, Rules: []Rule{IsFloat}},
		}},
	}
	violations := schema.Validate(map[string]any{"scores": map[string]any{"avg": "high"}})
	assert.Equal(t, map[string][]string{"scores.avg": {MsgWrongType("float")}}, violations)

	violations = schema.Validate(map[string]any{"scores": []any{}})
	assert.Equal(t, map[string][]string{"scores": {MsgWrongType("array")}}, violations)
}

func TestEachFoldsElementViolations(t *testing.T) {
	schema := Schema{{Name: "tags", Rules: []Rule{IsArray, MinCount(1), Each(NotBlank, IsString)}}}
	violations := schema.Validate(map[string]any{"tags": []any{"", 3.0}})
	assert.Equal(t, map[string][]string{"tags": {MsgNotBlank, MsgWrongType("string")}}, violations)
}
