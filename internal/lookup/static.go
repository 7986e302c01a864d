package lookup

import (
	"context"
	"strings"
)

// Static answers from a fixed directory supplied at construction.
type Static struct {
	users map[string]string
}

// NewStatic builds a Static directory. Each entry is either "name" or
// "name=Full Name"; blank entries are ignored.
func NewStatic(entries []string) *Static {
	users := make(map[string]string, len(entries))
	for _, entry := range entries {
		name, fullName, _ := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		users[name] = strings.TrimSpace(fullName)
	}
	return &Static{users: users}
}

// Lookup reports whether username is in the directory.
func (s *Static) Lookup(_ context.Context, username string) (Result, error) {
	fullName, ok := s.users[username]
	if !ok {
		return NotFound(), nil
	}
	res := Found()
	if fullName != "" {
		res["full_name"] = fullName
	}
	return res, nil
}

// Len returns the number of known accounts.
func (s *Static) Len() int {
	return len(s.users)
}
