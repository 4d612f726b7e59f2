// pkg/codec/jsoncodec.go
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxBody caps what DecodeReader will read.
const MaxBody = 1 << 20

var ErrBodyTooLarge = errors.New("json body too large")

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

type jsonStrict struct{}

// JSONStrict rejects unknown fields and trailing content.
var JSONStrict Codec = jsonStrict{}

func (jsonStrict) Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (jsonStrict) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	// Trailing data must be EOF
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return errors.New("json trailing content")
	}
	return nil
}

func (jsonStrict) ContentType() string { return "application/json" }

// DecodeReader reads at most MaxBody bytes from r and strictly decodes them into v.
// An empty body leaves v untouched.
func DecodeReader(c Codec, r io.Reader, v any) error {
	b, err := io.ReadAll(io.LimitReader(r, MaxBody+1))
	if err != nil {
		return err
	}
	if len(b) > MaxBody {
		return ErrBodyTooLarge
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	return c.Unmarshal(b, v)
}
