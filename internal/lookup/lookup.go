// Package lookup resolves a username to the display fields rendered next to
// the form. Backends answer whether the account exists and may add details.
package lookup

import (
	"context"
	"fmt"

	"github.com/odyssey-erp/usercheck/internal/platform/httpx"
)

// FieldHas is set by every backend to "true" or "false".
const FieldHas = "has"

// ErrUnavailable reports that the backing directory could not be reached.
var ErrUnavailable = fmt.Errorf("lookup: %w", httpx.ErrUnavailable)

// Result holds the fields a backend returns for one username.
type Result map[string]string

// Lookup resolves a username.
type Lookup interface {
	Lookup(ctx context.Context, username string) (Result, error)
}

// Func adapts a plain function to Lookup.
type Func func(ctx context.Context, username string) (Result, error)

// Lookup calls f.
func (f Func) Lookup(ctx context.Context, username string) (Result, error) {
	return f(ctx, username)
}

// Found returns a result for an existing account.
func Found() Result {
	return Result{FieldHas: "true"}
}

// NotFound returns a result for an unknown account.
func NotFound() Result {
	return Result{FieldHas: "false"}
}

// Has reports whether the result describes an existing account.
func (r Result) Has() bool {
	return r[FieldHas] == "true"
}
