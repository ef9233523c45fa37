package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/odilia-app/odilia-common/input/key"
)

// Fields an Issue can refer to.
const (
	FieldKeys   = "keys"
	FieldMode   = "mode"
	FieldAction = "action"
)

// Issue describes one rejected binding declaration.
type Issue struct {
	// Index is the zero-based position of the declaration in the file.
	Index int

	// Keys is the binding text as written.
	Keys string

	// Field names the offending field: FieldKeys, FieldMode or FieldAction.
	Field string

	// Err is the parse or validation error.
	Err error
}

// Error implements the error interface.
func (i Issue) Error() string {
	return fmt.Sprintf("bindings[%d] (%q): %s: %v", i.Index, i.Keys, i.Field, i.Err)
}

// Unwrap returns the underlying error.
func (i Issue) Unwrap() error {
	return i.Err
}

// Kind returns the key parse error kind of the issue, or 0 when the issue
// is not a key parse error.
func (i Issue) Kind() key.KeyFromStrError {
	return key.ErrorKind(i.Err)
}

// Report collects the binding declarations rejected while building a keymap.
// A nil Report is empty.
type Report struct {
	// Source is the file the report describes.
	Source string

	// Issues are in file order.
	Issues []Issue
}

func (r *Report) add(index int, keys, field string, err error) {
	r.Issues = append(r.Issues, Issue{Index: index, Keys: keys, Field: field, Err: err})
}

// OK reports whether no declaration was rejected.
func (r *Report) OK() bool {
	return r.Len() == 0
}

// Len returns the number of issues.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Issues)
}

// Error returns every issue, one per line.
func (r *Report) Error() string {
	if r.OK() {
		return ""
	}
	lines := make([]string, 0, len(r.Issues)+1)
	lines = append(lines, fmt.Sprintf("%s: %d invalid binding declaration(s)", r.Source, len(r.Issues)))
	for _, issue := range r.Issues {
		lines = append(lines, "  "+issue.Error())
	}
	return strings.Join(lines, "\n")
}

// Err returns the issues joined into one error, or nil when OK.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Issues))
	for i, issue := range r.Issues {
		errs[i] = issue
	}
	return errors.Join(errs...)
}

// Kinds counts issues by key parse error kind. Issues that are not key
// parse errors are not counted.
func (r *Report) Kinds() map[key.KeyFromStrError]int {
	counts := make(map[key.KeyFromStrError]int)
	if r == nil {
		return counts
	}
	for _, issue := range r.Issues {
		if k := issue.Kind(); k != 0 {
			counts[k]++
		}
	}
	return counts
}

// Fields returns the distinct offending fields, sorted.
func (r *Report) Fields() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, issue := range r.Issues {
		if !seen[issue.Field] {
			seen[issue.Field] = true
			out = append(out, issue.Field)
		}
	}
	sort.Strings(out)
	return out
}
