// Package schema provides builder helpers for declaring tool input schemas.
//
// Schemas are plain JSON Schema values from the MCP SDK. The helpers here
// keep per-tool declarations short and make constraints (bounds, patterns,
// defaults) explicit at the declaration site. The MCP server validates each
// invocation against its tool's schema before the handler runs, so handlers
// never see out-of-contract input.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// StringWithDesc creates a schema for an unconstrained string with a description.
func StringWithDesc(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: desc,
	}
}

// BoundedString creates a schema for a string with inclusive length bounds.
func BoundedString(desc string, minLen, maxLen int) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: desc,
		MinLength:   ptrInt(minLen),
		MaxLength:   ptrInt(maxLen),
	}
}

// Pattern creates a schema for a string constrained by a regular expression.
func Pattern(desc, pattern string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: desc,
		Pattern:     pattern,
	}
}

// IntRange creates a schema for an integer with inclusive bounds.
func IntRange(desc string, minVal, maxVal int) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Description: desc,
		Minimum:     ptrFloat64(float64(minVal)),
		Maximum:     ptrFloat64(float64(maxVal)),
	}
}

// IntRangeDefault creates a bounded integer schema with a default value,
// surfaced to hosts that show defaults to the model.
func IntRangeDefault(desc string, minVal, maxVal, def int) *jsonschema.Schema {
	s := IntRange(desc, minVal, maxVal)
	s.Default = json.RawMessage(fmt.Sprintf("%d", def))
	return s
}

// Object creates a schema for an object with the specified properties and
// required fields.
func Object(properties map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	if properties == nil {
		properties = map[string]*jsonschema.Schema{}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func ptrInt(v int) *int {
	return &v
}

func ptrFloat64(v float64) *float64 {
	return &v
}
