// Package content loads the JSON documents that make up the game's static content.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Document is a parsed content file. Records are accessed through gjson so that
// a key that is absent can be told apart from a key holding a zero value.
type Document struct {
	Path string
	Name string
	Raw  []byte
	Root gjson.Result
}

// Load reads and parses a JSON content file
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		kind := Unreadable
		if errors.Is(err, fs.ErrNotExist) {
			kind = FileMissing
		}
		return nil, &LoadError{
			Kind:    kind,
			Path:    path,
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	if !gjson.ValidBytes(raw) {
		return nil, &LoadError{
			Kind:    MalformedJSON,
			Path:    path,
			Message: fmt.Sprintf("invalid JSON in %s", path),
			Cause:   syntaxError(raw),
		}
	}

	return &Document{
		Path: path,
		Name: filepath.Base(path),
		Raw:  raw,
		Root: gjson.ParseBytes(raw),
	}, nil
}

// List returns the records stored under key. A missing key, or one that does
// not hold an array, yields no records.
func (d *Document) List(key string) []gjson.Result {
	list := d.Root.Get(key)
	if !list.IsArray() {
		return nil
	}
	return list.Array()
}

// syntaxError recovers a descriptive parse error for content gjson rejected
func syntaxError(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return errors.New("document is not valid JSON")
}
