package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownKey is returned when a pattern file names a field no shape has.
var ErrUnknownKey = errors.New("unknown key")

// File is the on-disk pattern list:
//
//	[[shape]]
//	name = "l"
//	rows = ["###", "..#"]
//
// A shape may give rows, or width, height and a flat pattern.
type File struct {
	Shapes []FileShape `toml:"shape"`
}

// FileShape is one pattern entry in a File.
type FileShape struct {
	Pattern
	Rows []string `toml:"rows"`
}

// Patterns converts the entries to Patterns. Rows, when present, set the
// height and the flat pattern; the width defaults to the first row's length.
func (f File) Patterns() []Pattern {
	out := make([]Pattern, 0, len(f.Shapes))
	for _, s := range f.Shapes {
		p := s.Pattern
		if len(s.Rows) > 0 {
			p.Height = len(s.Rows)
			if p.Width == 0 {
				p.Width = len(s.Rows[0])
			}
			p.Pattern = strings.Join(s.Rows, "")
		}
		out = append(out, p)
	}
	return out
}

// Decode reads a TOML pattern list from r and builds a catalog from it.
func Decode(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading patterns: %w", err)
	}

	var f File
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decoding patterns: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, unknownKey(data, f, undecoded[0])
	}
	return Build(f.Patterns())
}

// unknownKey locates the entry holding key so the error can name it. Keys of
// array tables carry no index, so the entries are read again as plain tables.
func unknownKey(data []byte, f File, key toml.Key) error {
	if len(key) == 2 && key[0] == "shape" {
		var raw struct {
			Shapes []map[string]any `toml:"shape"`
		}
		if _, err := toml.Decode(string(data), &raw); err == nil {
			for i, entry := range raw.Shapes {
				if _, ok := entry[key[1]]; ok {
					return &BuildError{Index: i, Name: f.Shapes[i].Name, Err: fmt.Errorf("%w %q", ErrUnknownKey, key[1])}
				}
			}
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownKey, key.String())
}

// Load builds a catalog from the TOML pattern file at path.
func Load(path string) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	c, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
