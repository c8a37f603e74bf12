// Package forms holds the staging state behind the vehicle, client and login
// screens. Each form keeps raw string input per field and turns it into a
// record on Submit; the only validation performed is a presence check on
// required fields.
package forms

import (
	"fmt"
	"strings"
)

// Field describes one input of a form.
type Field struct {
	Key         string
	Label       string
	Section     string
	Placeholder string
	Required    bool
	Secret      bool
}

// MissingFieldError reports a required field left blank.
type MissingFieldError struct {
	Key   string
	Label string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("campo obrigatório: %s", e.Label)
}

// values is the staging storage shared by every form.
type values map[string]string

func (v values) get(key string) string { return v[key] }

func (v values) set(fields []Field, key, value string) error {
	for _, f := range fields {
		if f.Key == key {
			v[key] = value
			return nil
		}
	}
	return fmt.Errorf("unknown field %q", key)
}

func (v values) trimmed(key string) string { return strings.TrimSpace(v[key]) }

// checkRequired returns the first required field with blank input.
func (v values) checkRequired(fields []Field) error {
	for _, f := range fields {
		if f.Required && v.trimmed(f.Key) == "" {
			return &MissingFieldError{Key: f.Key, Label: f.Label}
		}
	}
	return nil
}
