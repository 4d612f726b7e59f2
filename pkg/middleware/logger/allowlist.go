package logger

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	bodyLogMu    sync.RWMutex
	bodyLogPaths = map[string]struct{}{
		"/auth/security_filters": {},
	}
)

// AddBodyLogPaths lets callers extend the allowlist at runtime (optional).
func AddBodyLogPaths(paths ...string) {
	bodyLogMu.Lock()
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p != "" {
			bodyLogPaths[p] = struct{}{}
		}
	}
	bodyLogMu.Unlock()
}

// maxLoggedBody caps both the logged body and how much of it is buffered.
const maxLoggedBody = 1 << 14

// bodyCandidate reports whether a request may have its body logged at all.
// It looks only at the request line and headers so nothing is buffered for
// requests that would never be logged.
func bodyCandidate(r *http.Request) bool {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		return false
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return false
	}
	bodyLogMu.RLock()
	_, ok := bodyLogPaths[r.URL.Path]
	bodyLogMu.RUnlock()
	return ok
}

// Only log small JSON request bodies on allowlisted routes.
func shouldLogBody(r *http.Request, body []byte) bool {
	if len(body) == 0 || len(body) > maxLoggedBody {
		return false
	}
	return bodyCandidate(r)
}

// peekBody reads at most n+1 bytes of rc and returns them along with a body
// that replays them ahead of the unread remainder.
func peekBody(rc io.ReadCloser, n int64) ([]byte, io.ReadCloser) {
	prefix, _ := io.ReadAll(io.LimitReader(rc, n+1))
	return prefix, struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(prefix), rc), rc}
}
