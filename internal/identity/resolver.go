package identity

import (
	"net/http"

	"github.com/linguaflow/scorereport/internal/auth"
)

// Resolver extracts the caller identity from an incoming request. A nil
// identity with a nil error means the request carries no usable credentials;
// the middleware turns that into a 401.
type Resolver interface {
	Resolve(r *http.Request) (*auth.Identity, error)
}

// Gateway-injected identity headers.
const (
	HeaderUserID = "X-User-Id"
	HeaderRole   = "X-User-Role"
)

// HeaderResolver trusts identity headers set by the API gateway after it has
// verified the session. Only deploy this behind a gateway that strips the
// headers from external traffic.
type HeaderResolver struct{}

func (HeaderResolver) Resolve(r *http.Request) (*auth.Identity, error) {
	userID := r.Header.Get(HeaderUserID)
	if userID == "" {
		return nil, nil
	}
	return &auth.Identity{
		UserID: userID,
		Role:   r.Header.Get(HeaderRole),
	}, nil
}
