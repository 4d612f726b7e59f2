package identity

import (
	"context"
	"errors"
	"net/http"
)

// ChainExtractor tries each extractor in order and returns the first success.
type ChainExtractor []Extractor

func (c ChainExtractor) ExtractUserDetails(ctx context.Context, h http.Header) (UserDetails, error) {
	if len(c) == 0 {
		return UserDetails{}, ErrNoIdentity
	}
	var errs []error
	for _, e := range c {
		d, err := e.ExtractUserDetails(ctx, h)
		if err == nil {
			return d, nil
		}
		errs = append(errs, err)
	}
	return UserDetails{}, errors.Join(errs...)
}
