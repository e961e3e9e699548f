package errors

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// ExtractContext returns the source lines around line (1-based) formatted
// with line numbers, marking the offending line with "->" and, when column
// is known, a caret under it.
func ExtractContext(source []byte, line, column, contextLines int) string {
	if line <= 0 || len(source) == 0 {
		return ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), len(source)+1)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanner.Err() != nil || line > len(lines) {
		return ""
	}

	errorLine := line - 1
	startLine := max(errorLine-contextLines, 0)
	endLine := min(errorLine+contextLines, len(lines)-1)

	var sb strings.Builder
	width := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}
		sb.WriteString(fmt.Sprintf("%s %*d | %s\n", prefix, width, i+1, lines[i]))

		if i == errorLine && column > 0 {
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", column-1)))
		}
	}

	return sb.String()
}

// WithContext attaches source context to err when its line is known.
func WithContext(err *Error, source []byte) *Error {
	if err != nil && err.Line > 0 {
		err.Context = ExtractContext(source, err.Line, err.Column, 2)
	}
	return err
}
