package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/umputun/taskman/app/task"
)

const schemaURL = "tasks.schema.json"

var (
	compiledOnce   sync.Once
	compiledSchema *validator.Schema
	compileErr     error
)

// GenerateSchema reflects JSON schema of the tasks file, an array of task objects
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true, Anonymous: true}
	schema := r.Reflect(&[]task.Task{})
	schema.Title = "Tasks file"
	schema.Description = "List of tasks, each with name, description, priority and due date"
	return schema
}

// SchemaJSON returns the generated schema as indented JSON
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(GenerateSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// validateDocument checks decoded JSON document (as produced by json.Unmarshal into any)
// against the tasks file schema
func validateDocument(doc any) error {
	compiledOnce.Do(func() {
		data, err := SchemaJSON()
		if err != nil {
			compileErr = err
			return
		}
		compiler := validator.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile schema: %w", compileErr)
	}
	return compiledSchema.Validate(doc)
}
