// Package output renders document bundles and token statistics trees.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/promptpack/promptpack/internal/types"
)

const (
	documentsOpenTag   = "<documents>"
	documentsCloseTag  = "</documents>"
	documentOpenFormat = "<document path=\"%s\" index=\"%d\">"
	documentCloseTag   = "</document>"
)

// attributeEscaper rewrites the characters that would break a double-quoted
// XML attribute value.
var attributeEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// DocumentRenderer writes a pack bundle incrementally: the enclosing
// documents element, one document element per rendered document, and the
// closing tag. Payloads are written raw; only attribute values are escaped.
type DocumentRenderer struct {
	writer io.Writer
}

// NewDocumentRenderer creates a renderer emitting the bundle to writer.
func NewDocumentRenderer(writer io.Writer) *DocumentRenderer {
	return &DocumentRenderer{writer: writer}
}

// Begin writes the opening documents tag.
func (renderer *DocumentRenderer) Begin() error {
	_, writeError := fmt.Fprintln(renderer.writer, documentsOpenTag)
	return writeError
}

// Render writes one document element. The payload is framed by its own line
// regardless of a terminal newline in the content.
func (renderer *DocumentRenderer) Render(document types.Document) error {
	openTag := fmt.Sprintf(documentOpenFormat, attributeEscaper.Replace(document.Path), document.Index)
	if _, writeError := fmt.Fprintln(renderer.writer, openTag); writeError != nil {
		return writeError
	}
	if _, writeError := fmt.Fprintln(renderer.writer, document.Content); writeError != nil {
		return writeError
	}
	_, writeError := fmt.Fprintln(renderer.writer, documentCloseTag)
	return writeError
}

// Finish writes the closing documents tag.
func (renderer *DocumentRenderer) Finish() error {
	_, writeError := fmt.Fprintln(renderer.writer, documentsCloseTag)
	return writeError
}

// WriteDocuments renders a complete bundle in one call.
func WriteDocuments(writer io.Writer, documents []types.Document) error {
	renderer := NewDocumentRenderer(writer)
	if beginError := renderer.Begin(); beginError != nil {
		return beginError
	}
	for _, document := range documents {
		if renderError := renderer.Render(document); renderError != nil {
			return renderError
		}
	}
	return renderer.Finish()
}
