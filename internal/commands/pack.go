// Package commands implements the traversal, classification, and extraction
// pipeline behind the pack and stats commands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptpack/promptpack/internal/ignore"
	"github.com/promptpack/promptpack/internal/types"
	"github.com/promptpack/promptpack/internal/utils"
)

const (
	// warningIgnoreLoadFormat is used when ignore rules cannot be loaded for a directory.
	warningIgnoreLoadFormat = "Warning: unable to load ignore rules for %s: %v\n"
	// warningSkipSubdirFormat is used when a directory cannot be read.
	warningSkipSubdirFormat = "Warning: Skipping subdirectory %s due to error: %v\n"
	// warningSkipFileFormat is used when a file cannot be read or decoded.
	warningSkipFileFormat = "Warning: Skipping file %s due to error: %v\n"
	// warningStatPathFormat is used when file information cannot be retrieved.
	warningStatPathFormat = "Warning: unable to stat %s: %v\n"
)

// PackOptions controls filtering, traversal, and extraction for a single run.
type PackOptions struct {
	// Extensions restricts emitted files to the listed extensions when non-empty.
	Extensions []string
	// IncludeHidden admits entries whose names start with a dot.
	IncludeHidden bool
	// IgnorePatterns are explicit patterns evaluated after every ignore file.
	IgnorePatterns []string
	// IgnoreFilesOnly keeps directories matched only by IgnorePatterns traversable.
	IgnoreFilesOnly bool
	// Sources selects which ignore files are consulted during traversal.
	Sources ignore.Sources
	// IncludeGit admits .git directories, which are otherwise always pruned.
	IncludeGit bool
	// LineNumbers prefixes text payloads with right-aligned line numbers.
	LineNumbers bool
	// ExtractSQLite emits SQLite databases as schema documents instead of
	// rejecting them as binary.
	ExtractSQLite bool
	// WorkingDirectory anchors the relative document paths.
	WorkingDirectory string
	// Warn receives recoverable per-entry warnings. Defaults to stderr.
	Warn func(message string)
}

// DocumentVisitor receives each emitted document in traversal order.
type DocumentVisitor func(types.Document) error

// Packer walks validated input paths depth first and emits every document
// that survives classification, deduplicated across overlapping inputs.
type Packer struct {
	options    PackOptions
	extensions map[string]struct{}
	emitted    map[string]struct{}
	nextIndex  int
}

// NewPacker creates a packer for one run. Extension values are normalized by
// stripping a single leading dot.
func NewPacker(options PackOptions) *Packer {
	packer := &Packer{
		options:   options,
		emitted:   map[string]struct{}{},
		nextIndex: 1,
	}
	if len(options.Extensions) > 0 {
		packer.extensions = make(map[string]struct{}, len(options.Extensions))
		for _, extensionValue := range options.Extensions {
			packer.extensions[utils.NormalizeExtension(extensionValue)] = struct{}{}
		}
	}
	return packer
}

// Pack processes each validated path in input order and streams the selected
// documents to visitor. Explicitly listed files bypass the hidden, ignore,
// and extension policies but still undergo content classification.
func (packer *Packer) Pack(validatedPaths []types.ValidatedPath, visitor DocumentVisitor) error {
	for _, validatedPath := range validatedPaths {
		if validatedPath.IsDir {
			if walkError := packer.packDirectory(validatedPath.AbsolutePath, visitor); walkError != nil {
				return walkError
			}
			continue
		}
		if emitError := packer.emitExplicitFile(validatedPath.AbsolutePath, visitor); emitError != nil {
			return emitError
		}
	}
	return nil
}

// packDirectory traverses one root directory with a fresh scope chain built
// from its ancestors' ignore files.
func (packer *Packer) packDirectory(rootDirectoryPath string, visitor DocumentVisitor) error {
	globalRules := ignore.CompilePatterns(packer.options.IgnorePatterns)
	stack := ignore.NewStack(rootDirectoryPath, globalRules, packer.options.IgnoreFilesOnly)

	ancestorScopes, scopesError := ignore.AncestorScopes(rootDirectoryPath, packer.options.Sources)
	if scopesError != nil {
		packer.warnf(warningIgnoreLoadFormat, rootDirectoryPath, scopesError)
	}
	for _, ancestorScope := range ancestorScopes {
		stack.Push(ancestorScope.Root, ancestorScope.Rules)
	}

	return packer.walkDirectory(rootDirectoryPath, stack, visitor)
}

// walkDirectory pushes the directory's own ignore scope, visits its entries
// in lexical order, and pops the scope on the way out. Only visitor errors
// abort the walk; everything else warns and continues.
func (packer *Packer) walkDirectory(directoryPath string, stack *ignore.Stack, visitor DocumentVisitor) error {
	directoryRules, rulesError := ignore.DirectoryRules(directoryPath, packer.options.Sources)
	if rulesError != nil {
		packer.warnf(warningIgnoreLoadFormat, directoryPath, rulesError)
	}
	stack.Push(directoryPath, directoryRules)
	defer stack.Pop()

	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		packer.warnf(warningSkipSubdirFormat, directoryPath, readDirectoryError)
		return nil
	}

	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(directoryPath, directoryEntry.Name())
		isDirectory := directoryEntry.IsDir()

		if directoryEntry.Type()&os.ModeSymlink != 0 {
			targetInfo, statError := os.Stat(childPath)
			if statError != nil {
				packer.warnf(warningSkipFileFormat, childPath, statError)
				continue
			}
			// Symlinked directories are listed but never followed.
			if targetInfo.IsDir() {
				continue
			}
		}

		if isDirectory {
			if !packer.options.IncludeGit && directoryEntry.Name() == utils.GitDirectoryName {
				continue
			}
			if packer.ClassifyDirectory(directoryEntry.Name(), childPath, stack) != ClassificationIncluded {
				continue
			}
			if walkError := packer.walkDirectory(childPath, stack, visitor); walkError != nil {
				return walkError
			}
			continue
		}

		if emitError := packer.emitFile(directoryEntry.Name(), childPath, stack, visitor); emitError != nil {
			return emitError
		}
	}
	return nil
}

// emitFile classifies one regular file and emits it when selected.
func (packer *Packer) emitFile(entryName string, absolutePath string, stack *ignore.Stack, visitor DocumentVisitor) error {
	if _, emittedBefore := packer.emitted[absolutePath]; emittedBefore {
		return nil
	}
	classification, classifyError := packer.ClassifyFile(entryName, absolutePath, stack)
	if classifyError != nil {
		packer.warnf(warningSkipFileFormat, absolutePath, classifyError)
		return nil
	}
	if !classification.Emittable() {
		return nil
	}
	return packer.emitDocument(absolutePath, classification, visitor)
}

// emitExplicitFile emits a file the user listed directly. Name-based policies
// are bypassed; content classification still applies.
func (packer *Packer) emitExplicitFile(absolutePath string, visitor DocumentVisitor) error {
	if _, emittedBefore := packer.emitted[absolutePath]; emittedBefore {
		return nil
	}
	classification, classifyError := packer.classifyContent(absolutePath)
	if classifyError != nil {
		packer.warnf(warningSkipFileFormat, absolutePath, classifyError)
		return nil
	}
	if !classification.Emittable() {
		return nil
	}
	return packer.emitDocument(absolutePath, classification, visitor)
}

// emitDocument extracts the payload, finalizes the document, and hands it to
// the visitor. The document index advances only on successful emission so
// indices stay contiguous.
func (packer *Packer) emitDocument(absolutePath string, classification Classification, visitor DocumentVisitor) error {
	payload, lineCount, extractError := Extract(absolutePath, classification, packer.options.LineNumbers)
	if extractError != nil {
		packer.warnf(warningSkipFileFormat, absolutePath, extractError)
		return nil
	}

	var sizeBytes int64
	fileInfo, statError := os.Stat(absolutePath)
	if statError != nil {
		packer.warnf(warningStatPathFormat, absolutePath, statError)
	} else {
		sizeBytes = fileInfo.Size()
	}

	document := types.Document{
		Path:      packer.displayPath(absolutePath),
		Index:     packer.nextIndex,
		Kind:      documentKind(classification),
		Content:   payload,
		Lines:     lineCount,
		SizeBytes: sizeBytes,
	}
	packer.emitted[absolutePath] = struct{}{}
	packer.nextIndex++

	if visitor == nil {
		return nil
	}
	return visitor(document)
}

// displayPath renders absolutePath relative to the working directory when the
// entry lives under it and keeps the absolute form otherwise.
func (packer *Packer) displayPath(absolutePath string) string {
	workingDirectory := packer.options.WorkingDirectory
	if workingDirectory == "" {
		return filepath.ToSlash(absolutePath)
	}
	relativePath, relError := filepath.Rel(workingDirectory, absolutePath)
	if relError != nil || relativePath == ".." || strings.HasPrefix(relativePath, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(absolutePath)
	}
	return filepath.ToSlash(relativePath)
}

func documentKind(classification Classification) string {
	if classification == ClassificationSchema {
		return types.DocumentKindSchema
	}
	return types.DocumentKindText
}

func (packer *Packer) warnf(format string, values ...any) {
	message := fmt.Sprintf(format, values...)
	if packer.options.Warn != nil {
		packer.options.Warn(message)
		return
	}
	fmt.Fprint(os.Stderr, message)
}
