package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
)

// rawSet and rawIcon mirror the file layout. Pointers mark required fields
// so a missing key can be told apart from a zero value.
type rawSet struct {
	Set      *string    `json:"set" yaml:"set"`
	Areas    []string   `json:"areas" yaml:"areas"`
	Sections *[]string  `json:"sections" yaml:"sections"`
	Icons    *[]rawIcon `json:"icons" yaml:"icons"`
}

type rawIcon struct {
	Name     *string  `json:"name" yaml:"name"`
	Area     string   `json:"area" yaml:"area"`
	Section  string   `json:"section" yaml:"section"`
	Variants *int     `json:"variants" yaml:"variants"`
	Dark     bool     `json:"dark" yaml:"dark"`
	HiDPI    bool     `json:"hiDPI" yaml:"hiDPI"`
	Sizes    *[][]int `json:"sizes" yaml:"sizes"`
	Kind     *string  `json:"kind" yaml:"kind"`
	Java     string   `json:"java" yaml:"java"`
}

// LoadFile reads a catalog file. Files ending in .yaml or .yml are parsed
// as YAML; anything else as JSON.
func LoadFile(path string) ([]IconSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer func() { _ = f.Close() }()

	var sets []IconSet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sets, err = loadYAML(f)
	default:
		sets, err = Load(f)
	}
	if err != nil {
		var ce *icerrors.CatalogError
		if errors.As(err, &ce) {
			return nil, ce.WithDetail("path", path)
		}
		return nil, err
	}
	return sets, nil
}

// Load parses a JSON catalog document. The whole load fails on the first
// problem; there is no partial result.
func Load(r io.Reader) ([]IconSet, error) {
	raw, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	return convert(raw)
}

func loadYAML(r io.Reader) ([]IconSet, error) {
	var raw []rawSet
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, icerrors.ParseError("catalog document is empty", nil)
		}
		return nil, icerrors.ParseError("malformed catalog document", err)
	}
	if raw == nil {
		return nil, icerrors.ParseError("catalog document must be a list of icon sets", nil)
	}
	return convert(raw)
}

func openError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return icerrors.New(icerrors.ErrCodeCatalogNotFound, "catalog file not found", err).
			WithDetail("path", path).
			WithSuggestion("Pass --catalog or set catalog.path in .iconcat.yaml")
	case errors.Is(err, fs.ErrPermission):
		return icerrors.New(icerrors.ErrCodeCatalogPermission, "catalog file not readable", err).
			WithDetail("path", path).
			WithSuggestion("Check the file permissions")
	default:
		return icerrors.New(icerrors.ErrCodeCatalogNotFound, "failed to open catalog file", err).
			WithDetail("path", path)
	}
}

func decodeJSON(r io.Reader) ([]rawSet, error) {
	dec := json.NewDecoder(r)

	var raw []rawSet
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, icerrors.ParseError("catalog document is empty", nil)
		}
		pe := icerrors.ParseError("malformed catalog document", err)
		var syn *json.SyntaxError
		var typ *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syn):
			pe.WithDetail("offset", fmt.Sprint(syn.Offset))
		case errors.As(err, &typ):
			pe.WithDetail("offset", fmt.Sprint(typ.Offset))
			if typ.Field != "" {
				pe.WithDetail("field", typ.Field)
			}
		}
		return nil, pe
	}
	if raw == nil {
		return nil, icerrors.ParseError("catalog document must be an array of icon sets", nil)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, icerrors.ParseError("unexpected data after catalog document", err)
	}
	return raw, nil
}

// convert validates the raw records and builds the typed catalog.
func convert(raw []rawSet) ([]IconSet, error) {
	sets := make([]IconSet, 0, len(raw))
	for i, rs := range raw {
		set, err := convertSet(rs)
		if err != nil {
			return nil, recordError(fmt.Sprintf("[%d]", i), err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func convertSet(rs rawSet) (IconSet, *fieldError) {
	switch {
	case rs.Set == nil:
		return IconSet{}, missing("set")
	case rs.Sections == nil:
		return IconSet{}, missing("sections")
	case rs.Icons == nil:
		return IconSet{}, missing("icons")
	}

	set := IconSet{
		Set:      *rs.Set,
		Areas:    rs.Areas,
		Sections: *rs.Sections,
		Icons:    make([]Icon, 0, len(*rs.Icons)),
	}
	for j, ri := range *rs.Icons {
		icon, err := convertIcon(ri, set.Set)
		if err != nil {
			return IconSet{}, err.within(fmt.Sprintf(".icons[%d]", j))
		}
		set.Icons = append(set.Icons, icon)
	}
	return set, nil
}

func convertIcon(ri rawIcon, setName string) (Icon, *fieldError) {
	switch {
	case ri.Name == nil:
		return Icon{}, missing("name")
	case ri.Variants == nil:
		return Icon{}, missing("variants")
	case ri.Sizes == nil:
		return Icon{}, missing("sizes")
	case ri.Kind == nil:
		return Icon{}, missing("kind")
	}

	if *ri.Variants < 1 {
		return Icon{}, invalid("variants", fmt.Sprintf("must be at least 1, got %d", *ri.Variants))
	}
	if len(*ri.Sizes) == 0 {
		return Icon{}, invalid("sizes", "at least one size is required")
	}

	sizes := make([]Size, 0, len(*ri.Sizes))
	for k, pair := range *ri.Sizes {
		field := fmt.Sprintf("sizes[%d]", k)
		if len(pair) != 2 {
			return Icon{}, invalid(field, fmt.Sprintf("want [width, height], got %d values", len(pair)))
		}
		if pair[0] < 0 || pair[1] < 0 {
			return Icon{}, invalid(field, "dimensions must not be negative")
		}
		sizes = append(sizes, Size{Width: pair[0], Height: pair[1]})
	}

	return Icon{
		Name:     *ri.Name,
		Set:      setName,
		Area:     ri.Area,
		Section:  ri.Section,
		Variants: *ri.Variants,
		Dark:     ri.Dark,
		// A high-DPI size is the source of truth for the flag.
		HiDPI:     ri.HiDPI || len(sizes) > 1,
		Sizes:     sizes,
		Format:    ParseFormat(*ri.Kind),
		Qualified: ri.Java,
	}, nil
}

// fieldError locates a validation failure inside the record tree.
type fieldError struct {
	path string
	msg  string
}

func (e *fieldError) within(prefix string) *fieldError {
	return &fieldError{path: prefix + e.path, msg: e.msg}
}

func missing(field string) *fieldError {
	return &fieldError{path: "." + field, msg: "required field missing"}
}

func invalid(field, msg string) *fieldError {
	return &fieldError{path: "." + field, msg: msg}
}

func recordError(prefix string, fe *fieldError) error {
	fe = fe.within(prefix)
	return icerrors.ParseError(fmt.Sprintf("invalid catalog record at %s: %s", fe.path, fe.msg), nil).
		WithDetail("field", fe.path)
}
