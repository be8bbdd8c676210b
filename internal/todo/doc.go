// Package todo holds the to-do items, the id allocator and the JSON file they
// are persisted to.
//
// The todo file (todos.json) is a JSON array following the schema embedded
// from todo.schema.json:
//
//	[
//	  {
//	    "id": 1,
//	    "title": "Learn Go",
//	    "status": "Pending"
//	  },
//	  {
//	    "id": 3,
//	    "title": "Write a todo app",
//	    "status": "Completed"
//	  }
//	]
//
// # Identifiers
//
// Ids are positive integers unique among live items. A Manager hands them out
// through an Allocator that combines a monotonic counter with a stack of free
// ids. Ids released by Delete are reused most recent first. Gaps found when
// a file is loaded are reused smallest first, after any later deletes. In
// the example above, the next Add receives id 2.
//
// Only the items are persisted. The allocator is rebuilt on load: the counter
// becomes max(id)+1 and every unused id in [1, max(id)] becomes free.
//
// # Loading
//
// Load applies the empty-on-error policy: a missing, unreadable, malformed or
// schema-invalid file yields an empty Manager instead of an error. The reason
// is reported in the returned LoadResult so callers can tell "empty file"
// from "fell back". LoadStrict performs the same decoding without the
// fallback.
//
// # Validation
//
//   - JSON syntax errors map to LoadMalformed
//   - Schema violations (missing field, id outside [1, 2147483647], unknown
//     status) map to LoadInvalid
//   - Unknown item fields are ignored
//   - Duplicate ids map to LoadInvalid
//
// # File Format
//
// When writing todo files, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - A temporary file renamed over the target
package todo
