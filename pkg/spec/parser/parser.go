package parser

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/model"
)

// DefaultMaxFileSize bounds the input accepted by Parse and ParseBytes.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Format selects the input syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", specErrors.New(specErrors.CodeMalformed,
		fmt.Sprintf("Unsupported format: %s", s),
		"Use 'yaml', 'json' or 'auto'")
}

// DetectFormat picks the format from a file extension. Unknown extensions
// are read as YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Parser parses marketing specifications.
type Parser struct {
	maxFileSize int64
	format      Format
}

// NewParser creates a parser that accepts files up to DefaultMaxFileSize and
// detects the format automatically.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: DefaultMaxFileSize,
		format:      FormatAuto,
	}
}

// WithMaxFileSize sets the maximum input size in bytes.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	if size > 0 {
		p.maxFileSize = size
	}
	return p
}

// WithFormat forces the input format for Parse.
func (p *Parser) WithFormat(format Format) *Parser {
	p.format = format
	return p
}

// Parse reads and parses the specification file at path.
func (p *Parser) Parse(path string) (*model.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		e := specErrors.Wrap(err, specErrors.CodeMalformed,
			fmt.Sprintf("Failed to access file: %v", err),
			"Check that the file exists and is readable")
		e.File = path
		return nil, e
	}
	if info.IsDir() {
		e := specErrors.New(specErrors.CodeMalformed,
			fmt.Sprintf("%s is a directory", path),
			"Pass the path of a YAML or JSON specification file")
		e.File = path
		return nil, e
	}
	if info.Size() > p.maxFileSize {
		e := specErrors.New(specErrors.CodeMalformed,
			fmt.Sprintf("File size %d exceeds maximum %d bytes", info.Size(), p.maxFileSize),
			"Split the specification or raise validation.max_file_size")
		e.File = path
		return nil, e
	}

	data, err := os.ReadFile(path)
	if err != nil {
		e := specErrors.Wrap(err, specErrors.CodeMalformed,
			fmt.Sprintf("Failed to read file: %v", err),
			"Check file permissions")
		e.File = path
		return nil, e
	}

	format := p.format
	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}

	doc, err := p.ParseBytes(data, format)
	if err != nil {
		if e, ok := err.(*specErrors.Error); ok {
			e.File = path
			for _, d := range e.Details {
				d.File = path
			}
		}
		return nil, err
	}
	return doc, nil
}

// ParseBytes parses an in-memory specification. FormatAuto reads JSON when
// the first non-space byte is '{' and YAML otherwise.
func (p *Parser) ParseBytes(data []byte, format Format) (*model.Document, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, specErrors.New(specErrors.CodeMalformed,
			fmt.Sprintf("Data size %d exceeds maximum %d bytes", len(data), p.maxFileSize),
			"Split the specification or raise validation.max_file_size")
	}

	if format == FormatAuto || format == "" {
		format = FormatYAML
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	var (
		doc     *model.Document
		locator fieldLocator
		err     *specErrors.Error
	)
	switch format {
	case FormatYAML:
		doc, locator, err = decodeYAML(data)
	case FormatJSON:
		doc, locator, err = decodeJSON(data)
	default:
		_, ferr := ParseFormat(string(format))
		return nil, ferr
	}
	if err != nil {
		return nil, specErrors.WithContext(err, data)
	}

	if err := checkShape(doc, locator); err != nil {
		return nil, specErrors.WithContext(err, data)
	}

	doc.ApplyDefaults()
	return doc, nil
}

// fieldLocator maps a document path such as "campaigns[0].plan_id" to a
// source position. It returns zeros when the position is unknown.
type fieldLocator func(path string) (line, column int)

func noLocation(string) (int, int) { return 0, 0 }
