package auth

import "github.com/joeydtaylor/steeze-identity/pkg/claims"

type contextKey struct{ name string }

var claimsCtxKey = &contextKey{"claims"}

type Middleware struct {
	adapter *claims.Adapter
}
