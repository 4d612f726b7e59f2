package claims

import "encoding/json"

// UnknownUser is the oid used when the proxy sent no user id.
const UnknownUser = "unknown_user"

// DefaultProvider fills auth_provider when the proxy did not name one.
const DefaultProvider = "auth0"

// Claims is the normalized identity handed to the authorization layer.
// The zero value means unauthenticated and encodes as {}. Any other value
// encodes all four keys, with null for empty fields.
type Claims struct {
	OID               string `json:"oid"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	AuthProvider      string `json:"auth_provider"`
}

func (c Claims) IsEmpty() bool { return c == Claims{} }

func (c Claims) MarshalJSON() ([]byte, error) {
	if c.IsEmpty() {
		return []byte(`{}`), nil
	}
	return json.Marshal(struct {
		OID               *string `json:"oid"`
		Name              *string `json:"name"`
		PreferredUsername *string `json:"preferred_username"`
		AuthProvider      *string `json:"auth_provider"`
	}{nullable(c.OID), nullable(c.Name), nullable(c.PreferredUsername), nullable(c.AuthProvider)})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ClientAuthSetup tells the browser client how to bootstrap login.
type ClientAuthSetup struct {
	UseLogin                    bool           `json:"useLogin"`
	RequireAccessControl        bool           `json:"requireAccessControl"`
	EnableUnauthenticatedAccess bool           `json:"enableUnauthenticatedAccess"`
	MSALConfig                  map[string]any `json:"msalConfig"`
}

// SearchClient is the index client a path check may consult. Header auth never does.
type SearchClient any

// Outcome labels one ClaimsIfEnabled call for metrics.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeMissingOID Outcome = "missing_oid"
	OutcomeFailed     Outcome = "failed"
)

// Recorder receives one Outcome per claims extraction.
type Recorder interface {
	ObserveExtraction(Outcome)
}

type nopRecorder struct{}

func (nopRecorder) ObserveExtraction(Outcome) {}
