package parser

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"

	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/model"
)

// decodeJSON decodes a JSON object. Positions are only known for syntax
// and type errors, so shape errors carry the document path alone.
func decodeJSON(data []byte) (*model.Document, fieldLocator, *specErrors.Error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, jsonError(err, data)
	}
	if _, ok := root.(map[string]any); !ok {
		return nil, nil, specErrors.New(specErrors.CodeMalformed,
			fmt.Sprintf("Expected object, got %s", jsonKindName(root)),
			"Ensure JSON root is an object {...}")
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, jsonError(err, data)
	}
	return &doc, noLocation, nil
}

func jsonError(err error, data []byte) *specErrors.Error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case stderrors.As(err, &syntaxErr):
		line, col := lineCol(data, syntaxErr.Offset)
		e := specErrors.Wrap(err, specErrors.CodeMalformed,
			fmt.Sprintf("Invalid JSON syntax: %s at line %d, column %d", syntaxErr.Error(), line, col),
			"Check JSON syntax, ensure proper quoting and commas")
		e.Line, e.Column = line, col
		return e
	case stderrors.As(err, &typeErr):
		line, col := lineCol(data, typeErr.Offset)
		e := specErrors.Wrap(err, specErrors.CodeInvalidValue,
			fmt.Sprintf("Invalid value for '%s': expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
			fmt.Sprintf("Check the value and type for '%s'", typeErr.Field))
		e.Field = typeErr.Field
		e.Line, e.Column = line, col
		return e
	}
	return specErrors.Wrap(err, specErrors.CodeMalformed,
		fmt.Sprintf("Invalid JSON: %v", err),
		"Check JSON syntax, ensure proper quoting and commas")
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}

func jsonKindName(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	}
	return "object"
}
