package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a report document from disk. The file is expected to be a
// complete document; the run side's atomic rewrite guarantees that for any
// file it produced.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a serialized document, preserving the completion order of
// the benchmark entries. A plain map round-trip would lose that order, so
// the top-level object is walked token by token.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid report document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("invalid report document: expected a JSON object")
	}

	doc := NewDocument(Metadata{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid report document: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid report document: non-string key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid report document: %w", err)
		}

		switch key {
		case metadataKey:
			if err := json.Unmarshal(raw, &doc.Metadata); err != nil {
				return nil, fmt.Errorf("invalid report metadata: %w", err)
			}
		case summaryKey:
			var s Summary
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("invalid report summary: %w", err)
			}
			doc.Summary = &s
		default:
			var e Entry
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("invalid report entry %q: %w", key, err)
			}
			e.Name = key
			if err := doc.Append(e); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}
