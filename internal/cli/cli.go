// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptpack/promptpack/internal/commands"
	"github.com/promptpack/promptpack/internal/config"
	"github.com/promptpack/promptpack/internal/ignore"
	"github.com/promptpack/promptpack/internal/output"
	"github.com/promptpack/promptpack/internal/services/clipboard"
	"github.com/promptpack/promptpack/internal/stats"
	"github.com/promptpack/promptpack/internal/tokenizer"
	"github.com/promptpack/promptpack/internal/types"
	"github.com/promptpack/promptpack/internal/utils"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	extensionFlagName        = "extension"
	extensionFlagShorthand   = "e"
	includeHiddenFlagName    = "include-hidden"
	ignoreFlagName           = "ignore"
	ignoreFilesOnlyFlagName  = "ignore-files-only"
	noGitignoreFlagName      = "no-gitignore"
	noIgnoreFlagName         = "no-ignore"
	includeGitFlagName       = "git"
	lineNumbersFlagName      = "line-numbers"
	lineNumbersFlagShorthand = "n"
	nullFlagName             = "null"
	nullFlagShorthand        = "0"
	outputFlagName           = "output"
	outputFlagShorthand      = "o"
	copyFlagName             = "copy"
	extractSQLiteFlagName    = "extract-sqlite"
	modelFlagName            = "model"
	tokenizerFileFlagName    = "tokenizer-file"
	configFlagName           = "config"
	versionFlagName          = "version"
	versionTemplate          = "promptpack version: %s\n"
	rootUse                  = "promptpack"
	rootShortDescription     = "promptpack command line interface"
	rootLongDescription      = `promptpack bundles source trees into a single LLM-ready document.
It walks directories with gitignore-style filtering, wraps every included file
in a <document> element, and reports per-directory token statistics.
Use pack to emit the bundle, stats for token counts, and config init to write
a starter configuration file.`
	versionFlagDescription = "display application version"
	packUse                = "pack [paths...]"
	statsUse               = "stats [paths...]"
	packAlias              = "p"
	statsAlias             = "s"
	packShortDescription   = "bundle files into a prompt document (" + packAlias + ")"
	statsShortDescription  = "report token statistics (" + statsAlias + ")"

	// packLongDescription provides detailed help for the pack command.
	packLongDescription = `Bundle files from the given paths into one <documents> element.
Traversal honors .gitignore and .ignore rules, skips hidden entries and
binary files, and emits SQLite databases as schema summaries when
--extract-sqlite is set. Paths are also read from stdin when it is piped.`
	// packUsageExample demonstrates pack command usage.
	packUsageExample = `  # Bundle a project without its logs
  promptpack pack --ignore '*.log' .

  # Number lines and copy the bundle to the clipboard
  promptpack pack -n --copy src/

  # Bundle files selected by another tool
  find . -name '*.go' -print0 | promptpack pack -0`

	// statsLongDescription provides detailed help for the stats command.
	statsLongDescription = `Report token counts for the files a pack run would include.
Counts come from the selected tokenizer model and roll up per directory.`
	// statsUsageExample demonstrates stats command usage.
	statsUsageExample = `  # Token totals for the current project
  promptpack stats .

  # Count with a local HuggingFace tokenizer
  promptpack stats --tokenizer-file tokenizer.json docs/`

	extensionFlagDescription        = "only include files with the given extension"
	includeHiddenFlagDescription    = "include hidden files and directories"
	ignoreFlagDescription           = "exclude entries matching the pattern"
	ignoreFilesOnlyFlagDescription  = "apply --ignore patterns to files only"
	disableGitignoreFlagDescription = "do not use .gitignore"
	disableIgnoreFlagDescription    = "do not use .ignore"
	includeGitFlagDescription       = "include git directory"
	lineNumbersFlagDescription      = "prefix each line with its number"
	nullFlagDescription             = "read NUL-separated paths from stdin"
	outputFlagDescription           = "write the bundle to a file instead of stdout"
	copyFlagDescription             = "copy the bundle to the clipboard"
	extractSQLiteFlagDescription    = "emit SQLite databases as schema summaries"
	modelFlagDescription            = "tokenizer model to use for token counting"
	tokenizerFileFlagDescription    = "path to a HuggingFace tokenizer.json file"
	configFlagDescription           = "configuration file to load instead of " + utils.ConfigFileName
	defaultTokenizerModelName       = "gpt-4o"

	warningTokenCountFormat     = "Warning: failed to count tokens for %s: %v\n"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNoValidPaths indicates that all paths are invalid.
	errorNoValidPaths = "no valid paths"
	// errorStdinReadFormat reports failure to read piped input paths.
	errorStdinReadFormat = "reading paths from stdin: %w"
	// errorOutputFileFormat reports failure to create the --output file.
	errorOutputFileFormat          = "unable to create output file '%s': %w"
	clipboardServiceMissingMessage = "clipboard service is not available"
	clipboardCopyErrorFormat       = "copying bundle to clipboard: %w"
)

// Execute runs the promptpack application.
func Execute() error {
	rootCommand := createRootCommand()
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var configFilePath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&configFilePath, configFlagName, "", configFlagDescription)
	rootCommand.AddCommand(
		createPackCommand(&configFilePath),
		createStatsCommand(&configFilePath),
		createConfigCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// pathOptions stores the traversal selection flags shared by pack and stats.
type pathOptions struct {
	extensions        []string
	includeHidden     bool
	ignorePatterns    []string
	ignoreFilesOnly   bool
	disableGitignore  bool
	disableIgnoreFile bool
	includeGit        bool
}

func (options pathOptions) toSources() ignore.Sources {
	return ignore.Sources{
		UseGitignore:  !options.disableGitignore,
		UseIgnoreFile: !options.disableIgnoreFile,
	}
}

type tokenOptions struct {
	model         string
	tokenizerFile string
}

func (options tokenOptions) toConfig(workingDirectory string) tokenizer.Config {
	return tokenizer.Config{
		Model:            options.model,
		TokenizerFile:    options.tokenizerFile,
		WorkingDirectory: workingDirectory,
	}
}

// addPathFlags registers the shared traversal flags on the command.
func addPathFlags(command *cobra.Command, options *pathOptions) {
	command.Flags().StringArrayVarP(&options.extensions, extensionFlagName, extensionFlagShorthand, nil, extensionFlagDescription)
	command.Flags().StringArrayVar(&options.ignorePatterns, ignoreFlagName, nil, ignoreFlagDescription)
	registerBooleanFlag(command.Flags(), &options.includeHidden, includeHiddenFlagName, "", false, includeHiddenFlagDescription)
	registerBooleanFlag(command.Flags(), &options.ignoreFilesOnly, ignoreFilesOnlyFlagName, "", false, ignoreFilesOnlyFlagDescription)
	registerBooleanFlag(command.Flags(), &options.disableGitignore, noGitignoreFlagName, "", false, disableGitignoreFlagDescription)
	registerBooleanFlag(command.Flags(), &options.disableIgnoreFile, noIgnoreFlagName, "", false, disableIgnoreFlagDescription)
	registerBooleanFlag(command.Flags(), &options.includeGit, includeGitFlagName, "", false, includeGitFlagDescription)
}

// createPackCommand returns the pack subcommand.
func createPackCommand(configFilePath *string) *cobra.Command {
	var pathConfiguration pathOptions
	var lineNumbers bool
	var nullSeparated bool
	var outputFilePath string
	var copyEnabled bool
	var extractSQLite bool

	packCommand := &cobra.Command{
		Use:     packUse,
		Aliases: []string{packAlias},
		Short:   packShortDescription,
		Long:    packLongDescription,
		Example: packUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: *configFilePath,
			})
			if configurationError != nil {
				return configurationError
			}
			configured := applicationConfiguration.Pack
			overlayStringList(command, extensionFlagName, &pathConfiguration.extensions, configured.Extensions)
			overlayBool(command, includeHiddenFlagName, &pathConfiguration.includeHidden, configured.IncludeHidden)
			applyPathConfiguration(command, configured.Paths, &pathConfiguration)
			overlayBool(command, lineNumbersFlagName, &lineNumbers, configured.LineNumbers)
			overlayBool(command, extractSQLiteFlagName, &extractSQLite, configured.ExtractSQLite)
			overlayBool(command, copyFlagName, &copyEnabled, configured.Clipboard)
			overlayString(command, outputFlagName, &outputFilePath, configured.Output)

			inputPaths, inputPathsError := collectInputPaths(arguments, os.Stdin, nullSeparated)
			if inputPathsError != nil {
				return inputPathsError
			}
			return executePack(packRunConfiguration{
				paths:            pathConfiguration,
				lineNumbers:      lineNumbers,
				extractSQLite:    extractSQLite,
				outputFilePath:   outputFilePath,
				copyEnabled:      copyEnabled,
				inputPaths:       inputPaths,
				workingDirectory: workingDirectory,
				clipboard:        clipboard.NewService(),
			})
		},
	}

	addPathFlags(packCommand, &pathConfiguration)
	registerBooleanFlag(packCommand.Flags(), &lineNumbers, lineNumbersFlagName, lineNumbersFlagShorthand, false, lineNumbersFlagDescription)
	registerBooleanFlag(packCommand.Flags(), &nullSeparated, nullFlagName, nullFlagShorthand, false, nullFlagDescription)
	packCommand.Flags().StringVarP(&outputFilePath, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	registerBooleanFlag(packCommand.Flags(), &copyEnabled, copyFlagName, "", false, copyFlagDescription)
	registerBooleanFlag(packCommand.Flags(), &extractSQLite, extractSQLiteFlagName, "", false, extractSQLiteFlagDescription)
	return packCommand
}

// createStatsCommand returns the stats subcommand.
func createStatsCommand(configFilePath *string) *cobra.Command {
	var pathConfiguration pathOptions
	var nullSeparated bool
	var extractSQLite bool
	var tokenConfiguration tokenOptions
	tokenConfiguration.model = defaultTokenizerModelName

	statsCommand := &cobra.Command{
		Use:     statsUse,
		Aliases: []string{statsAlias},
		Short:   statsShortDescription,
		Long:    statsLongDescription,
		Example: statsUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: *configFilePath,
			})
			if configurationError != nil {
				return configurationError
			}
			configured := applicationConfiguration.Stats
			overlayStringList(command, extensionFlagName, &pathConfiguration.extensions, configured.Extensions)
			overlayBool(command, includeHiddenFlagName, &pathConfiguration.includeHidden, configured.IncludeHidden)
			applyPathConfiguration(command, configured.Paths, &pathConfiguration)
			overlayBool(command, extractSQLiteFlagName, &extractSQLite, configured.ExtractSQLite)
			overlayString(command, modelFlagName, &tokenConfiguration.model, configured.Tokens.Model)
			overlayString(command, tokenizerFileFlagName, &tokenConfiguration.tokenizerFile, configured.Tokens.TokenizerFile)

			inputPaths, inputPathsError := collectInputPaths(arguments, os.Stdin, nullSeparated)
			if inputPathsError != nil {
				return inputPathsError
			}
			return executeStats(statsRunConfiguration{
				paths:            pathConfiguration,
				extractSQLite:    extractSQLite,
				tokens:           tokenConfiguration,
				inputPaths:       inputPaths,
				workingDirectory: workingDirectory,
			})
		},
	}

	addPathFlags(statsCommand, &pathConfiguration)
	registerBooleanFlag(statsCommand.Flags(), &nullSeparated, nullFlagName, nullFlagShorthand, false, nullFlagDescription)
	registerBooleanFlag(statsCommand.Flags(), &extractSQLite, extractSQLiteFlagName, "", false, extractSQLiteFlagDescription)
	statsCommand.Flags().StringVar(&tokenConfiguration.model, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	statsCommand.Flags().StringVar(&tokenConfiguration.tokenizerFile, tokenizerFileFlagName, "", tokenizerFileFlagDescription)
	return statsCommand
}

// applyPathConfiguration overlays configured path values onto flag targets
// that were not set explicitly on the command line.
func applyPathConfiguration(command *cobra.Command, configured config.PathConfiguration, options *pathOptions) {
	overlayStringList(command, ignoreFlagName, &options.ignorePatterns, configured.Ignore)
	overlayBool(command, ignoreFilesOnlyFlagName, &options.ignoreFilesOnly, configured.IgnoreFilesOnly)
	overlayNegatedBool(command, noGitignoreFlagName, &options.disableGitignore, configured.UseGitignore)
	overlayNegatedBool(command, noIgnoreFlagName, &options.disableIgnoreFile, configured.UseIgnoreFile)
	overlayBool(command, includeGitFlagName, &options.includeGit, configured.IncludeGit)
}

func overlayBool(command *cobra.Command, flagName string, target *bool, configured *bool) {
	if configured == nil || command.Flags().Changed(flagName) {
		return
	}
	*target = *configured
}

// overlayNegatedBool maps a configured "use" value onto a "disable" flag.
func overlayNegatedBool(command *cobra.Command, flagName string, target *bool, configured *bool) {
	if configured == nil || command.Flags().Changed(flagName) {
		return
	}
	*target = !*configured
}

func overlayString(command *cobra.Command, flagName string, target *string, configured string) {
	if configured == "" || command.Flags().Changed(flagName) {
		return
	}
	*target = configured
}

func overlayStringList(command *cobra.Command, flagName string, target *[]string, configured []string) {
	if len(configured) == 0 || command.Flags().Changed(flagName) {
		return
	}
	*target = append([]string(nil), configured...)
}

// packRunConfiguration carries the resolved pack settings into execution.
// A nil writer means stdout; a nil clipboard fails only when copy is enabled.
type packRunConfiguration struct {
	paths            pathOptions
	lineNumbers      bool
	extractSQLite    bool
	outputFilePath   string
	copyEnabled      bool
	inputPaths       []string
	workingDirectory string
	writer           io.Writer
	clipboard        clipboard.Copier
}

// executePack validates the input paths, runs the traversal, and renders the
// document bundle to the configured destination.
func executePack(configuration packRunConfiguration) (err error) {
	validatedPaths, pathValidationError := resolveAndValidatePaths(configuration.inputPaths)
	if pathValidationError != nil {
		return pathValidationError
	}

	outputWriter := configuration.writer
	if outputWriter == nil {
		outputWriter = os.Stdout
	}
	if configuration.outputFilePath != "" {
		outputFile, createError := os.Create(configuration.outputFilePath)
		if createError != nil {
			return fmt.Errorf(errorOutputFileFormat, configuration.outputFilePath, createError)
		}
		defer func() {
			if closeError := outputFile.Close(); closeError != nil && err == nil {
				err = closeError
			}
		}()
		outputWriter = outputFile
	}
	var clipboardBuffer *bytes.Buffer
	if configuration.copyEnabled {
		if configuration.clipboard == nil {
			return errors.New(clipboardServiceMissingMessage)
		}
		clipboardBuffer = &bytes.Buffer{}
		outputWriter = io.MultiWriter(outputWriter, clipboardBuffer)
	}

	packer := commands.NewPacker(commands.PackOptions{
		Extensions:       configuration.paths.extensions,
		IncludeHidden:    configuration.paths.includeHidden,
		IgnorePatterns:   configuration.paths.ignorePatterns,
		IgnoreFilesOnly:  configuration.paths.ignoreFilesOnly,
		Sources:          configuration.paths.toSources(),
		IncludeGit:       configuration.paths.includeGit,
		LineNumbers:      configuration.lineNumbers,
		ExtractSQLite:    configuration.extractSQLite,
		WorkingDirectory: configuration.workingDirectory,
	})
	renderer := output.NewDocumentRenderer(outputWriter)
	if beginError := renderer.Begin(); beginError != nil {
		return beginError
	}

	producer := func(streamCtx context.Context, documents chan<- types.Document) error {
		return packer.Pack(validatedPaths, func(document types.Document) error {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case documents <- document:
				return nil
			}
		})
	}
	consumer := func(document types.Document) error {
		return renderer.Render(document)
	}
	if dispatchError := dispatchDocuments(context.Background(), producer, consumer); dispatchError != nil {
		return dispatchError
	}
	if finishError := renderer.Finish(); finishError != nil {
		return finishError
	}

	if configuration.copyEnabled && clipboardBuffer != nil {
		if copyError := configuration.clipboard.Copy(clipboardBuffer.String()); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}
	return nil
}

// statsRunConfiguration carries the resolved stats settings into execution.
type statsRunConfiguration struct {
	paths            pathOptions
	extractSQLite    bool
	tokens           tokenOptions
	inputPaths       []string
	workingDirectory string
	writer           io.Writer
}

// executeStats validates the input paths, runs the traversal without
// materializing line numbers, and renders the summary line and token tree.
func executeStats(configuration statsRunConfiguration) error {
	validatedPaths, pathValidationError := resolveAndValidatePaths(configuration.inputPaths)
	if pathValidationError != nil {
		return pathValidationError
	}

	outputWriter := configuration.writer
	if outputWriter == nil {
		outputWriter = os.Stdout
	}

	tokenCounter, resolvedModel, counterError := tokenizer.NewCounter(configuration.tokens.toConfig(configuration.workingDirectory))
	if counterError != nil {
		return counterError
	}
	aggregator := stats.NewAggregator(tokenCounter)

	packer := commands.NewPacker(commands.PackOptions{
		Extensions:       configuration.paths.extensions,
		IncludeHidden:    configuration.paths.includeHidden,
		IgnorePatterns:   configuration.paths.ignorePatterns,
		IgnoreFilesOnly:  configuration.paths.ignoreFilesOnly,
		Sources:          configuration.paths.toSources(),
		IncludeGit:       configuration.paths.includeGit,
		ExtractSQLite:    configuration.extractSQLite,
		WorkingDirectory: configuration.workingDirectory,
	})

	producer := func(streamCtx context.Context, documents chan<- types.Document) error {
		return packer.Pack(validatedPaths, func(document types.Document) error {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case documents <- document:
				return nil
			}
		})
	}
	consumer := func(document types.Document) error {
		if recordError := aggregator.Record(document); recordError != nil {
			fmt.Fprintf(os.Stderr, warningTokenCountFormat, document.Path, recordError)
		}
		return nil
	}
	if dispatchError := dispatchDocuments(context.Background(), producer, consumer); dispatchError != nil {
		return dispatchError
	}

	totals := aggregator.Totals()
	summaryLine := output.FormatSummaryLine(&types.OutputSummary{
		TotalFiles:  totals.Files,
		TotalSize:   utils.FormatFileSize(totals.Bytes),
		TotalTokens: totals.Tokens,
		Model:       resolvedModel,
	})
	if _, writeError := fmt.Fprintln(outputWriter, summaryLine); writeError != nil {
		return writeError
	}
	output.WriteStatsTree(outputWriter, aggregator.Tree())
	return nil
}

// dispatchDocuments runs the producer and consumer concurrently, preserving
// document order through an unbuffered channel.
func dispatchDocuments(
	ctx context.Context,
	produce func(context.Context, chan<- types.Document) error,
	consume func(types.Document) error,
) error {
	group, streamCtx := errgroup.WithContext(ctx)
	documents := make(chan types.Document)

	group.Go(func() error {
		defer close(documents)
		return produce(streamCtx, documents)
	})

	group.Go(func() error {
		for {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case document, ok := <-documents:
				if !ok {
					return nil
				}
				if err := consume(document); err != nil {
					return err
				}
			}
		}
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// collectInputPaths combines the argument list with any paths piped on stdin.
func collectInputPaths(arguments []string, stdin *os.File, nullSeparated bool) ([]string, error) {
	inputPaths := append([]string(nil), arguments...)
	stdinPaths, stdinError := readStdinPaths(stdin, nullSeparated)
	if stdinError != nil {
		return nil, stdinError
	}
	return append(inputPaths, stdinPaths...), nil
}

func readStdinPaths(stdin *os.File, nullSeparated bool) ([]string, error) {
	if stdin == nil || stdinIsTerminal(stdin) {
		return nil, nil
	}
	data, readError := io.ReadAll(stdin)
	if readError != nil {
		return nil, fmt.Errorf(errorStdinReadFormat, readError)
	}
	return splitStdinPaths(string(data), nullSeparated), nil
}

func stdinIsTerminal(stdin *os.File) bool {
	info, statError := stdin.Stat()
	if statError != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// splitStdinPaths splits piped input into path strings. NUL separation
// preserves interior whitespace; the default mode splits on any whitespace.
func splitStdinPaths(data string, nullSeparated bool) []string {
	if !nullSeparated {
		return strings.Fields(data)
	}
	var paths []string
	for _, candidate := range strings.Split(data, "\x00") {
		if candidate == "" {
			continue
		}
		paths = append(paths, candidate)
	}
	return paths
}

// resolveAndValidatePaths converts input paths to absolute form and validates their existence.
func resolveAndValidatePaths(inputs []string) ([]types.ValidatedPath, error) {
	seen := make(map[string]struct{})
	var result []types.ValidatedPath
	for _, inputPath := range inputs {
		absolutePath, absolutePathError := filepath.Abs(inputPath)
		if absolutePathError != nil {
			return nil, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
		}
		cleanPath := filepath.Clean(absolutePath)
		if _, ok := seen[cleanPath]; ok {
			continue
		}
		info, fileStatusError := os.Stat(cleanPath)
		if fileStatusError != nil {
			if os.IsNotExist(fileStatusError) {
				return nil, fmt.Errorf(errorPathMissingFormat, inputPath)
			}
			return nil, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
		}
		seen[cleanPath] = struct{}{}
		result = append(result, types.ValidatedPath{AbsolutePath: cleanPath, IsDir: info.IsDir()})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf(errorNoValidPaths)
	}
	return result, nil
}
