package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/promptpack/promptpack/internal/utils"
)

// Sources controls which ignore files are consulted during discovery.
type Sources struct {
	UseIgnoreFile bool
	UseGitignore  bool
}

// Disabled reports whether discovery is switched off entirely.
func (sources Sources) Disabled() bool {
	return !sources.UseIgnoreFile && !sources.UseGitignore
}

// Scope couples a directory with the rules its ignore files declare.
type Scope struct {
	Root  string
	Rules []Rule
}

// LoadRuleLines reads an ignore file and compiles its lines in order.
// A missing file yields no rules and no error.
//
// #nosec G304
func LoadRuleLines(ignoreFilePath string) ([]Rule, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer fileHandle.Close()

	var rules []Rule
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		if rule, ok := ParseRuleLine(scanner.Text()); ok {
			rules = append(rules, rule)
		}
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return rules, nil
}

// DirectoryRules aggregates the rules declared by the ignore files of a
// single directory. The Git ignore file is read first so entries in the
// project ignore file evaluate later and win under last-match semantics.
func DirectoryRules(directoryPath string, sources Sources) ([]Rule, error) {
	var rules []Rule
	if sources.UseGitignore {
		gitIgnoreFilePath := filepath.Join(directoryPath, utils.GitIgnoreFileName)
		gitIgnoreRules, loadError := LoadRuleLines(gitIgnoreFilePath)
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", utils.GitIgnoreFileName, directoryPath, loadError)
		}
		rules = append(rules, gitIgnoreRules...)
	}
	if sources.UseIgnoreFile {
		ignoreFilePath := filepath.Join(directoryPath, utils.IgnoreFileName)
		ignoreRules, loadError := LoadRuleLines(ignoreFilePath)
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", utils.IgnoreFileName, directoryPath, loadError)
		}
		rules = append(rules, ignoreRules...)
	}
	return rules, nil
}

// AncestorScopes collects the ignore scopes of every directory from the
// filesystem root down to the parent of startDirectory, outermost first.
// A directory packed directly therefore still honors rules inherited from
// higher-level ignore files. Directories without rules are omitted.
func AncestorScopes(startDirectory string, sources Sources) ([]Scope, error) {
	if sources.Disabled() {
		return nil, nil
	}
	var ancestors []string
	currentDirectory := filepath.Dir(startDirectory)
	for {
		ancestors = append(ancestors, currentDirectory)
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}

	scopes := make([]Scope, 0, len(ancestors))
	for index := len(ancestors) - 1; index >= 0; index-- {
		rules, loadError := DirectoryRules(ancestors[index], sources)
		if loadError != nil {
			return scopes, loadError
		}
		if len(rules) > 0 {
			scopes = append(scopes, Scope{Root: ancestors[index], Rules: rules})
		}
	}
	return scopes, nil
}
