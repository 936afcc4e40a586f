package task

import (
	"os"
	"path/filepath"
	"testing"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "description", "completed", "priority"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "description": {"type": "string", "minLength": 1},
      "completed": {"type": "boolean"},
      "priority": {"type": "string", "enum": ["Low", "Medium", "High"]}
    }
  }
}`

func writeTestSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.schema.json")
	if err := os.WriteFile(path, []byte(testSchema), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateWithSchema(t *testing.T) {
	schemaPath := writeTestSchema(t)

	s := newTestStore(t)
	if _, err := s.Add("valid task"); err != nil {
		t.Fatal(err)
	}

	result := s.Validate(ValidationOptions{SchemaPath: schemaPath})
	if !result.UsedSchema {
		t.Fatal("schema validation should have been used")
	}
	if !result.Valid {
		t.Errorf("valid store failed validation: %v", result.Errors)
	}
}

func TestValidateWithSchemaCatchesBadPriority(t *testing.T) {
	schemaPath := writeTestSchema(t)

	s := newTestStore(t)
	s.tasks = []Task{{ID: 1, Description: "x", Priority: "Urgent"}}

	result := s.Validate(ValidationOptions{SchemaPath: schemaPath})
	if !result.UsedSchema {
		t.Fatal("schema validation should have been used")
	}
	if result.Valid {
		t.Error("invalid priority tag should fail schema validation")
	}
}

func TestValidateMissingSchemaFallsBack(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add("task"); err != nil {
		t.Fatal(err)
	}

	result := s.Validate(ValidationOptions{SchemaPath: filepath.Join(t.TempDir(), "nope.json")})
	if result.UsedSchema {
		t.Error("missing schema must not count as schema validation")
	}
	if !result.Valid {
		t.Errorf("minimal checks failed: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("missing schema should produce a warning")
	}
}

func TestValidateMinimal(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		valid bool
	}{
		{
			name:  "valid",
			tasks: []Task{{ID: 1, Description: "a", Priority: PriorityLow}},
			valid: true,
		},
		{
			name:  "empty store",
			tasks: nil,
			valid: true,
		},
		{
			name:  "zero id",
			tasks: []Task{{ID: 0, Description: "a", Priority: PriorityLow}},
			valid: false,
		},
		{
			name: "duplicate id",
			tasks: []Task{
				{ID: 1, Description: "a", Priority: PriorityLow},
				{ID: 1, Description: "b", Priority: PriorityLow},
			},
			valid: false,
		},
		{
			name:  "empty description",
			tasks: []Task{{ID: 1, Priority: PriorityLow}},
			valid: false,
		},
		{
			name:  "unknown priority",
			tasks: []Task{{ID: 1, Description: "a", Priority: "Urgent"}},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			s.tasks = tt.tasks
			result := s.Validate(ValidationOptions{})
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (errors: %v)", result.Valid, tt.valid, result.Errors)
			}
		})
	}
}
