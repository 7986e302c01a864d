package lookup

import (
	"context"
	"errors"
	"fmt"
	"os/user"
)

// Local checks the account database of the host the server runs on.
type Local struct {
	lookupUser func(username string) (*user.User, error)
}

// NewLocal returns a Local backed by os/user.
func NewLocal() *Local {
	return &Local{lookupUser: user.Lookup}
}

// Lookup reports whether username is a local account.
func (l *Local) Lookup(ctx context.Context, username string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("lookup/local: %w", err)
	}
	u, err := l.lookupUser(username)
	if err != nil {
		var unknown user.UnknownUserError
		if errors.As(err, &unknown) {
			return NotFound(), nil
		}
		return nil, fmt.Errorf("lookup/local: %s: %w", username, err)
	}
	res := Found()
	res["uid"] = u.Uid
	res["home"] = u.HomeDir
	if u.Name != "" {
		res["full_name"] = u.Name
	}
	return res, nil
}
