package parser

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/model"
)

var yamlLineRe = regexp.MustCompile(`line (\d+): (.*)`)

// decodeYAML decodes data through a yaml.Node so positions survive for
// error reporting.
func decodeYAML(data []byte) (*model.Document, fieldLocator, *specErrors.Error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		line, msg := splitYAMLError(err.Error())
		e := specErrors.Wrap(err, specErrors.CodeMalformed,
			fmt.Sprintf("Invalid YAML syntax: %s", msg),
			"Check YAML syntax, ensure proper indentation and no tabs")
		e.Line = line
		return nil, nil, e
	}

	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, nil, specErrors.New(specErrors.CodeMalformed,
			"Expected mapping, got empty document",
			"Ensure YAML root is a mapping (key-value pairs)")
	}

	root := node.Content[0]
	if root.Kind != yaml.MappingNode {
		e := specErrors.New(specErrors.CodeMalformed,
			fmt.Sprintf("Expected mapping, got %s", yamlKindName(root)),
			"Ensure YAML root is a mapping (key-value pairs)")
		e.Line, e.Column = root.Line, root.Column
		return nil, nil, e
	}

	var doc model.Document
	if err := root.Decode(&doc); err != nil {
		var typeErr *yaml.TypeError
		if stderrors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			line, msg := splitYAMLError(typeErr.Errors[0])
			e := specErrors.Wrap(err, specErrors.CodeInvalidValue,
				fmt.Sprintf("Invalid value: %s", msg),
				"Check the value type at the reported line")
			e.Line = line
			return nil, nil, e
		}
		return nil, nil, specErrors.Wrap(err, specErrors.CodeMalformed,
			fmt.Sprintf("Unexpected parsing error: %v", err),
			"Check file format and syntax")
	}

	return &doc, yamlLocator(root), nil
}

// splitYAMLError extracts the line number from a yaml.v3 message.
func splitYAMLError(msg string) (int, string) {
	msg = strings.TrimPrefix(msg, "yaml: ")
	m := yamlLineRe.FindStringSubmatch(msg)
	if m == nil {
		return 0, msg
	}
	line, _ := strconv.Atoi(m[1])
	return line, m[2]
}

func yamlKindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "null"
		}
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "mapping"
	}
}

// yamlLocator walks the node tree along a document path. When the path
// leads to a missing key, the position of the closest existing ancestor
// is returned.
func yamlLocator(root *yaml.Node) fieldLocator {
	return func(path string) (int, int) {
		cur := root
		line, col := root.Line, root.Column
		for _, seg := range splitPath(path) {
			next, keyNode := yamlChild(cur, seg)
			if next == nil {
				break
			}
			if keyNode != nil {
				line, col = keyNode.Line, keyNode.Column
			} else {
				line, col = next.Line, next.Column
			}
			cur = next
		}
		return line, col
	}
}

func yamlChild(n *yaml.Node, seg string) (value, key *yaml.Node) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == seg {
				return n.Content[i+1], n.Content[i]
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(seg)
		if err == nil && idx >= 0 && idx < len(n.Content) {
			return n.Content[idx], nil
		}
	}
	return nil, nil
}

// splitPath turns "campaigns[0].kpis[target_ctr]" into
// ["campaigns", "0", "kpis", "target_ctr"].
func splitPath(path string) []string {
	var segs []string
	for _, part := range strings.Split(path, ".") {
		for part != "" {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				segs = append(segs, part)
				break
			}
			if open > 0 {
				segs = append(segs, part[:open])
			}
			end := strings.IndexByte(part[open:], ']')
			if end < 0 {
				segs = append(segs, part[open+1:])
				break
			}
			segs = append(segs, part[open+1:open+end])
			part = part[open+end+1:]
		}
	}
	return segs
}
