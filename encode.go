package pokerlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeSessions decodes the persisted JSON array of session records.
func DecodeSessions(r io.Reader) ([]Session, error) {
	var sessions []Session
	dec := json.NewDecoder(r)
	if err := dec.Decode(&sessions); err != nil {
		return nil, fmt.Errorf("could not decode session list: %w", err)
	}
	return sessions, nil
}

// EncodeSessions encodes the full session list as a JSON array, one record
// per line for readable diffs. The field order within a record is canonical.
func EncodeSessions(w io.Writer, sessions []Session) error {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, s := range sessions {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
		line, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("could not encode session %q: %w", s.ID, err)
		}
		buf.Write(line)
	}
	if len(sessions) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("could not write session list: %w", err)
	}
	return nil
}
