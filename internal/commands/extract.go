package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/promptpack/promptpack/internal/sqlite"
	"github.com/promptpack/promptpack/internal/utils"
)

// errNotText reports a file whose full content failed text decoding after
// the bounded prefix sniff accepted it.
var errNotText = errors.New("content is not valid UTF-8 text")

// Extract produces the document payload for absolutePath according to its
// classification, along with the payload's line count. Text content must
// decode as UTF-8 in full; the sniff only covers the leading window, so a
// late NUL or invalid sequence surfaces here.
//
// #nosec G304
func Extract(absolutePath string, classification Classification, lineNumbers bool) (string, int, error) {
	if classification == ClassificationSchema {
		schemaPayload, schemaError := sqlite.ExtractSchema(absolutePath)
		if schemaError != nil {
			return "", 0, schemaError
		}
		return schemaPayload, countLines(schemaPayload), nil
	}

	rawContent, readError := os.ReadFile(absolutePath)
	if readError != nil {
		return "", 0, readError
	}
	if utils.IsBinary(rawContent) {
		return "", 0, errNotText
	}

	textContent := string(rawContent)
	if lineNumbers {
		numberedContent, lineCount := NumberLines(textContent)
		return numberedContent, lineCount, nil
	}
	return textContent, countLines(textContent), nil
}

// NumberLines prefixes every line of content with a right-aligned 1-based
// number padded to the width of the largest line number, followed by two
// spaces. Line bytes and the presence or absence of a terminal newline are
// preserved unchanged.
func NumberLines(content string) (string, int) {
	if content == "" {
		return "", 0
	}

	terminalNewline := strings.HasSuffix(content, "\n")
	body := content
	if terminalNewline {
		body = content[:len(content)-1]
	}
	lines := strings.Split(body, "\n")
	padding := len(strconv.Itoa(len(lines)))

	var builder strings.Builder
	for lineIndex, line := range lines {
		if lineIndex > 0 {
			builder.WriteByte('\n')
		}
		fmt.Fprintf(&builder, "%*d  %s", padding, lineIndex+1, line)
	}
	if terminalNewline {
		builder.WriteByte('\n')
	}
	return builder.String(), len(lines)
}

// countLines reports how many lines content holds, counting a trailing
// newline as the end of the last line rather than an extra empty one.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(content, "\n"), "\n") + 1
}
