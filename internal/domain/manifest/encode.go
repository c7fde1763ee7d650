package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Encode renders doc as UTF-8 JSON with 4-space indentation. HTML escaping
// is off — filenames pass through verbatim.
func Encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDoc encodes doc and writes it to path, overwriting any prior content.
// No merge, no backup: the manifest is rebuilt from scratch every run. A
// write failure is fatal to the run.
func WriteDoc(path string, doc any) error {
	b, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
