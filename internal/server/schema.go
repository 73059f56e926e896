package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task.schema.json
var taskSchemaJSON string

const taskSchemaURL = "taskboard://task.schema.json"

// ErrInvalidBody is wrapped by every request body rejection.
var ErrInvalidBody = errors.New("invalid request body")

func compileTaskSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(taskSchemaURL, strings.NewReader(taskSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(taskSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// taskBody is the accepted request shape. Missing or null description and
// completed fall back to "" and false.
type taskBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func decodeTaskBody(schema *jsonschema.Schema, raw []byte) (taskBody, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return taskBody{}, fmt.Errorf("%w: malformed JSON", ErrInvalidBody)
	}

	if err := schema.Validate(doc); err != nil {
		return taskBody{}, fmt.Errorf("%w: %s", ErrInvalidBody, schemaMessage(err))
	}

	var body taskBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return taskBody{}, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return body, nil
}

// schemaMessage returns the first leaf cause as "path: message".
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	path := strings.TrimPrefix(ve.InstanceLocation, "/")
	if path == "" {
		return ve.Message
	}
	return path + ": " + ve.Message
}
