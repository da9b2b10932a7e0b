package commands

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/promptpack/promptpack/internal/ignore"
	"github.com/promptpack/promptpack/internal/sqlite"
	"github.com/promptpack/promptpack/internal/utils"
)

// Classification is the policy outcome for a single directory entry.
type Classification int

const (
	// ClassificationIncluded selects a text file for extraction, or marks a
	// directory as traversable.
	ClassificationIncluded Classification = iota
	// ClassificationSchema selects a SQLite database for schema extraction.
	ClassificationSchema
	// ClassificationHidden rejects an entry under the hidden-name policy.
	ClassificationHidden
	// ClassificationIgnored rejects an entry matched by ignore rules.
	ClassificationIgnored
	// ClassificationExtension rejects a file outside the extension allow-list.
	ClassificationExtension
	// ClassificationBinary rejects a file whose leading bytes are not text.
	ClassificationBinary
)

// Emittable reports whether the classification selects the entry for output.
func (classification Classification) Emittable() bool {
	return classification == ClassificationIncluded || classification == ClassificationSchema
}

// ClassifyDirectory applies the hidden-name policy and the ignore rules to a
// directory entry. Anything other than ClassificationIncluded prunes the
// whole subtree.
func (packer *Packer) ClassifyDirectory(entryName string, absolutePath string, stack *ignore.Stack) Classification {
	if !packer.options.IncludeHidden && strings.HasPrefix(entryName, ".") {
		return ClassificationHidden
	}
	if stack.Excluded(absolutePath, true) {
		return ClassificationIgnored
	}
	return ClassificationIncluded
}

// ClassifyFile applies the file policies in order: hidden name, ignore rules,
// extension allow-list, then content sniffing. The first decisive policy
// wins; content is only read when every name-based policy passed.
func (packer *Packer) ClassifyFile(entryName string, absolutePath string, stack *ignore.Stack) (Classification, error) {
	if !packer.options.IncludeHidden && strings.HasPrefix(entryName, ".") {
		return ClassificationHidden, nil
	}
	if stack.Excluded(absolutePath, false) {
		return ClassificationIgnored, nil
	}
	if packer.extensions != nil {
		if _, allowed := packer.extensions[utils.ExtensionOf(entryName)]; !allowed {
			return ClassificationExtension, nil
		}
	}
	return packer.classifyContent(absolutePath)
}

// classifyContent distinguishes SQLite containers, binary data, and plain
// text by the leading bytes of the file.
func (packer *Packer) classifyContent(absolutePath string) (Classification, error) {
	window, windowFull, readError := readSniffWindow(absolutePath)
	if readError != nil {
		return ClassificationBinary, readError
	}
	if packer.options.ExtractSQLite && sqlite.IsDatabaseHeader(window) {
		return ClassificationSchema, nil
	}
	if utils.IsBinaryPrefix(window, windowFull) {
		return ClassificationBinary, nil
	}
	return ClassificationIncluded, nil
}

// readSniffWindow reads up to utils.BinarySniffLength leading bytes of the
// file and reports whether the window was filled completely.
//
// #nosec G304
func readSniffWindow(absolutePath string) ([]byte, bool, error) {
	fileHandle, openError := os.Open(absolutePath)
	if openError != nil {
		return nil, false, openError
	}
	defer fileHandle.Close()

	window := make([]byte, utils.BinarySniffLength)
	bytesRead, readError := io.ReadFull(fileHandle, window)
	if readError != nil && !errors.Is(readError, io.EOF) && !errors.Is(readError, io.ErrUnexpectedEOF) {
		return nil, false, readError
	}
	return window[:bytesRead], bytesRead == utils.BinarySniffLength, nil
}
