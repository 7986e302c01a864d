package frontend

import "github.com/odyssey-erp/usercheck/internal/lookup"

// FormState is the view model of the lookup page. The zero value is the
// default state: nothing checked, empty name.
type FormState struct {
	Check  bool
	Name   string
	Fields lookup.Result
	Error  string
}

// DefaultState returns the state rendered before any lookup.
func DefaultState() FormState {
	return FormState{}
}

// Exists reports whether the lookup found the account.
func (s FormState) Exists() bool {
	return s.Fields.Has()
}
