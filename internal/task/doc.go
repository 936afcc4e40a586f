// Package task owns the task collection, id assignment, and persistence.
//
// The tasks file (.tasks.json) is a JSON array of task records:
//
//	[
//	  {
//	    "id": 1,
//	    "description": "Buy milk",
//	    "completed": false,
//	    "priority": "Medium"
//	  }
//	]
//
// # Identifiers
//
// Ids are positive integers, unique for the lifetime of the store, and
// never reused after deletion. Files written before ids existed carry no
// id field; such records decode with id 0 and are assigned fresh ids on
// load, starting one past the highest id already in the file.
//
// # Priority
//
//   - "Low"
//   - "Medium" (default, also used when the field is absent)
//   - "High"
//
// # File Format
//
// When writing tasks files, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Write-to-temp-then-rename, so readers never see a partial file
//
// # Validation
//
// The package supports two validation modes:
//
// 1. JSON Schema validation (when a schema file is provided):
//   - Full validation against JSON Schema draft-2020-12
//
// 2. Minimal fallback validation (when no schema is available):
//   - Non-zero ids, unique ids, non-empty descriptions, known priority tags
package task
