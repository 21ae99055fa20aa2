package datasource

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every place where a document deviates from its schema
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, err.Field, err.Message))
	}
	return sb.String()
}

func validateAgainstSchema(schema string, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(string(document)),
	)
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

const companiesSchema string = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["index", "company"],
    "properties": {
      "index": {"type": "integer", "minimum": 0},
      "company": {"type": "string"}
    }
  }
}`

const peopleSchema string = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["index", "name"],
    "properties": {
      "_id": {"type": "string"},
      "index": {"type": "integer", "minimum": 0},
      "guid": {"type": "string"},
      "has_died": {"type": "boolean"},
      "balance": {"type": "string"},
      "picture": {"type": "string"},
      "age": {"type": "integer", "minimum": 0},
      "eyeColor": {"type": "string"},
      "name": {"type": "string"},
      "gender": {"type": "string"},
      "company_id": {"type": ["integer", "null"]},
      "email": {"type": "string"},
      "phone": {"type": "string"},
      "address": {"type": "string"},
      "about": {"type": "string"},
      "registered": {"type": "string"},
      "tags": {"type": "array", "items": {"type": "string"}},
      "friends": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["index"],
          "properties": {
            "index": {"type": "integer", "minimum": 0},
            "name": {"type": "string"}
          }
        }
      },
      "greeting": {"type": "string"},
      "favouriteFood": {"type": "array", "items": {"type": "string"}}
    }
  }
}`
