package jsondoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

const (
	// MaxCapacity is the default upper bound on input size in bytes.
	MaxCapacity int64 = 0xFFFFFFFF
	// DefaultMaxDepth is the default upper bound on container nesting.
	DefaultMaxDepth = 1024
)

// Option configures a Parser. Options are applied in order by NewParser, so a
// later option overrides an earlier one.
type Option func(p *Parser)

// WithMaxCapacity bounds the size of accepted input. Non-positive values
// leave the current limit in place.
func WithMaxCapacity(n int64) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxCapacity = n
		}
	}
}

// WithMaxDepth bounds how deeply objects and arrays may nest. Non-positive
// values leave the current limit in place.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// WithDuplicateNames controls whether an object may repeat a member name.
// Duplicates are accepted by default; lookups return the first occurrence.
func WithDuplicateNames(allow bool) Option {
	return func(p *Parser) { p.allowDuplicates = allow }
}

// Parser decodes JSON input into Documents. A Parser carries configuration
// only, so a single instance may be shared between goroutines.
type Parser struct {
	maxCapacity     int64
	maxDepth        int
	allowDuplicates bool
}

// NewParser constructs a Parser and applies the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxCapacity:     MaxCapacity,
		maxDepth:        DefaultMaxDepth,
		allowDuplicates: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Load reads and decodes the file at path using the default parser.
func Load(path string) (*Document, error) {
	return defaultParser.Load(path)
}

// Parse decodes data using the default parser.
func Parse(data []byte) (*Document, error) {
	return defaultParser.Parse(data)
}

// Load reads the file at path and decodes its contents. File system errors are
// returned wrapped, so errors.Is(err, fs.ErrNotExist) reports a missing file.
func (p *Parser) Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if info.Size() > p.maxCapacity {
		return nil, fmt.Errorf("load %s: %w (%d > %d bytes)", path, ErrCapacity, info.Size(), p.maxCapacity)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	doc, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes data as a single JSON value. Anything other than exactly one
// well-formed value, optionally surrounded by whitespace, fails with
// ErrInvalidInput.
func (p *Parser) Parse(data []byte) (*Document, error) {
	if int64(len(data)) > p.maxCapacity {
		return nil, fmt.Errorf("parse: %w (%d > %d bytes)", ErrCapacity, len(data), p.maxCapacity)
	}
	var root any
	if err := json.Unmarshal(data, &root, p.options()); err != nil {
		// The depth limit trips before the rest of the input is read, so it
		// only stands when the whole input is well-formed.
		if errors.Is(err, ErrDepth) {
			if serr := p.validate(data); serr != nil {
				return nil, fmt.Errorf("parse: %w: %w", ErrInvalidInput, serr)
			}
			return nil, fmt.Errorf("parse: %w", err)
		}
		return nil, fmt.Errorf("parse: %w: %w", ErrInvalidInput, err)
	}
	return &Document{root: root}, nil
}

// validate checks that data holds exactly one well-formed JSON value without
// building any values.
func (p *Parser) validate(data []byte) error {
	dec := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(p.allowDuplicates))
	if err := dec.SkipValue(); err != nil {
		return err
	}
	switch _, err := dec.ReadToken(); {
	case err == io.EOF:
		return nil
	case err != nil:
		return err
	default:
		return fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
}

// Unmarshalers returns the decoding functions used by the parser, for callers
// that decode with json.Unmarshal directly into Object, Array or any.
func (p *Parser) Unmarshalers() *json.Unmarshalers {
	return unmarshalers(p.maxDepth)
}

func (p *Parser) options() json.Options {
	return json.JoinOptions(
		json.WithUnmarshalers(p.Unmarshalers()),
		jsontext.AllowDuplicateNames(p.allowDuplicates),
	)
}
