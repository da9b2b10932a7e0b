package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/promptpack/promptpack/internal/ignore"
)

// repositoryRoot anchors the pure stack tests; no filesystem access happens.
const repositoryRoot = "/repo"

// allSources enables both ignore files during discovery tests.
var allSources = ignore.Sources{UseIgnoreFile: true, UseGitignore: true}

func newStack(globalPatterns []string, filesOnly bool) *ignore.Stack {
	return ignore.NewStack(repositoryRoot, ignore.CompilePatterns(globalPatterns), filesOnly)
}

// TestStackLastMatchWins verifies that a later negation re-includes an entry
// rejected by an earlier rule.
func TestStackLastMatchWins(testingInstance *testing.T) {
	stack := newStack(nil, false)
	stack.Push(repositoryRoot, ignore.ParseRules([]string{"*.log", "!keep.log"}))
	testCases := []struct {
		testName string
		path     string
		expected bool
	}{
		{testName: "negated file stays included", path: "keep.log", expected: false},
		{testName: "other file stays excluded", path: "other.log", expected: true},
		{testName: "unmatched file stays included", path: "notes.txt", expected: false},
	}
	for index, testCase := range testCases {
		actual := stack.Excluded(filepath.Join(repositoryRoot, testCase.path), false)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestStackDeeperScopeOverrides verifies that rules pushed for a subdirectory
// evaluate after inherited rules and can override them.
func TestStackDeeperScopeOverrides(testingInstance *testing.T) {
	documentationDirectory := filepath.Join(repositoryRoot, "docs")
	stack := newStack(nil, false)
	stack.Push(repositoryRoot, ignore.ParseRules([]string{"*.md"}))
	stack.Push(documentationDirectory, ignore.ParseRules([]string{"!readme.md"}))

	if stack.Excluded(filepath.Join(documentationDirectory, "readme.md"), false) {
		testingInstance.Errorf("expected deeper negation to re-include readme.md")
	}
	if !stack.Excluded(filepath.Join(documentationDirectory, "guide.md"), false) {
		testingInstance.Errorf("expected inherited rule to exclude guide.md")
	}

	stack.Pop()
	if !stack.Excluded(filepath.Join(repositoryRoot, "readme.md"), false) {
		testingInstance.Errorf("expected root readme.md to stay excluded after pop")
	}
}

// TestStackDirectoryOnly verifies that a trailing-slash rule applies to
// directories only.
func TestStackDirectoryOnly(testingInstance *testing.T) {
	stack := newStack(nil, false)
	stack.Push(repositoryRoot, ignore.ParseRules([]string{"build/"}))
	buildPath := filepath.Join(repositoryRoot, "build")

	if !stack.Excluded(buildPath, true) {
		testingInstance.Errorf("expected directory build to be excluded")
	}
	if stack.Excluded(buildPath, false) {
		testingInstance.Errorf("expected file named build to stay included")
	}
}

// TestStackGlobalRulesEvaluateLast verifies that explicitly supplied patterns
// override ignore-file rules.
func TestStackGlobalRulesEvaluateLast(testingInstance *testing.T) {
	stack := newStack([]string{"keep.txt"}, false)
	stack.Push(repositoryRoot, ignore.ParseRules([]string{"!keep.txt"}))

	if !stack.Excluded(filepath.Join(repositoryRoot, "keep.txt"), false) {
		testingInstance.Errorf("expected global pattern to win over file negation")
	}
}

// TestStackFilesOnlySuppression verifies that global rejections do not prune
// directories when files-only mode is active, while ignore-file rejections
// still do.
func TestStackFilesOnlySuppression(testingInstance *testing.T) {
	testCases := []struct {
		testName       string
		globalPatterns []string
		fileRules      []string
		path           string
		isDirectory    bool
		expected       bool
	}{
		{
			testName:       "global match keeps directory traversable",
			globalPatterns: []string{"temp*"},
			path:           "tempdir",
			isDirectory:    true,
			expected:       false,
		},
		{
			testName:       "global match still rejects file",
			globalPatterns: []string{"temp*"},
			path:           "tempfile",
			isDirectory:    false,
			expected:       true,
		},
		{
			testName:    "file rule rejection is not suppressed",
			fileRules:   []string{"tempdir/"},
			path:        "tempdir",
			isDirectory: true,
			expected:    true,
		},
		{
			testName:       "matching global and file rules reject directory",
			globalPatterns: []string{"temp*"},
			fileRules:      []string{"tempdir/"},
			path:           "tempdir",
			isDirectory:    true,
			expected:       true,
		},
	}
	for index, testCase := range testCases {
		stack := newStack(testCase.globalPatterns, true)
		if len(testCase.fileRules) > 0 {
			stack.Push(repositoryRoot, ignore.ParseRules(testCase.fileRules))
		}
		actual := stack.Excluded(filepath.Join(repositoryRoot, testCase.path), testCase.isDirectory)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestStackIgnoresEntriesOutsideScope verifies that rules never leak to paths
// outside their scope root.
func TestStackIgnoresEntriesOutsideScope(testingInstance *testing.T) {
	stack := newStack(nil, false)
	stack.Push(filepath.Join(repositoryRoot, "vendor"), ignore.ParseRules([]string{"*.go"}))

	if stack.Excluded(filepath.Join(repositoryRoot, "main.go"), false) {
		testingInstance.Errorf("expected rule scoped to vendor not to match outside its subtree")
	}
}

// TestDirectoryRulesOrder verifies that project ignore rules evaluate after
// Git ignore rules from the same directory.
func TestDirectoryRulesOrder(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	writeError := os.WriteFile(filepath.Join(temporaryRoot, ".gitignore"), []byte("*.log\n"), 0600)
	if writeError != nil {
		testingInstance.Fatalf("writing .gitignore: %v", writeError)
	}
	writeError = os.WriteFile(filepath.Join(temporaryRoot, ".ignore"), []byte("!keep.log\n"), 0600)
	if writeError != nil {
		testingInstance.Fatalf("writing .ignore: %v", writeError)
	}

	rules, loadError := ignore.DirectoryRules(temporaryRoot, allSources)
	if loadError != nil {
		testingInstance.Fatalf("loading rules: %v", loadError)
	}
	if len(rules) != 2 {
		testingInstance.Fatalf("expected 2 rules, got %d", len(rules))
	}

	stack := ignore.NewStack(temporaryRoot, nil, false)
	stack.Push(temporaryRoot, rules)
	if stack.Excluded(filepath.Join(temporaryRoot, "keep.log"), false) {
		testingInstance.Errorf("expected .ignore negation to override .gitignore rule")
	}
	if !stack.Excluded(filepath.Join(temporaryRoot, "other.log"), false) {
		testingInstance.Errorf("expected .gitignore rule to exclude other.log")
	}
}

// TestLoadRuleLinesSkipsCommentsAndBlanks verifies ignore-file parsing.
func TestLoadRuleLinesSkipsCommentsAndBlanks(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	ignoreFilePath := filepath.Join(temporaryRoot, ".gitignore")
	content := "# comment\n\n*.tmp\n!pin.tmp\nbuild/\n"
	if writeError := os.WriteFile(ignoreFilePath, []byte(content), 0600); writeError != nil {
		testingInstance.Fatalf("writing ignore file: %v", writeError)
	}

	rules, loadError := ignore.LoadRuleLines(ignoreFilePath)
	if loadError != nil {
		testingInstance.Fatalf("loading rules: %v", loadError)
	}
	if len(rules) != 3 {
		testingInstance.Fatalf("expected 3 rules, got %d", len(rules))
	}
	if !rules[1].Negated {
		testingInstance.Errorf("expected second rule to be negated")
	}
	if !rules[2].DirectoryOnly {
		testingInstance.Errorf("expected third rule to be directory-only")
	}
}

// TestLoadRuleLinesMissingFile verifies that a missing ignore file is not an error.
func TestLoadRuleLinesMissingFile(testingInstance *testing.T) {
	rules, loadError := ignore.LoadRuleLines(filepath.Join(testingInstance.TempDir(), ".gitignore"))
	if loadError != nil {
		testingInstance.Fatalf("expected no error, got %v", loadError)
	}
	if len(rules) != 0 {
		testingInstance.Fatalf("expected no rules, got %d", len(rules))
	}
}

// TestAncestorScopes verifies that a directly packed subdirectory inherits
// rules from ignore files above it.
func TestAncestorScopes(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	childDirectory := filepath.Join(temporaryRoot, "child")
	if mkdirError := os.Mkdir(childDirectory, 0755); mkdirError != nil {
		testingInstance.Fatalf("creating child directory: %v", mkdirError)
	}
	writeError := os.WriteFile(filepath.Join(temporaryRoot, ".gitignore"), []byte("*.log\n"), 0600)
	if writeError != nil {
		testingInstance.Fatalf("writing .gitignore: %v", writeError)
	}

	scopes, scopeError := ignore.AncestorScopes(childDirectory, allSources)
	if scopeError != nil {
		testingInstance.Fatalf("collecting ancestor scopes: %v", scopeError)
	}
	found := false
	for _, currentScope := range scopes {
		if currentScope.Root == temporaryRoot {
			found = true
		}
	}
	if !found {
		testingInstance.Fatalf("expected a scope rooted at %s", temporaryRoot)
	}

	stack := ignore.NewStack(childDirectory, nil, false)
	for _, currentScope := range scopes {
		stack.Push(currentScope.Root, currentScope.Rules)
	}
	if !stack.Excluded(filepath.Join(childDirectory, "app.log"), false) {
		testingInstance.Errorf("expected inherited rule to exclude app.log")
	}
}

// TestAncestorScopesDisabled verifies that disabling both sources skips discovery.
func TestAncestorScopesDisabled(testingInstance *testing.T) {
	scopes, scopeError := ignore.AncestorScopes(testingInstance.TempDir(), ignore.Sources{})
	if scopeError != nil {
		testingInstance.Fatalf("expected no error, got %v", scopeError)
	}
	if len(scopes) != 0 {
		testingInstance.Fatalf("expected no scopes, got %d", len(scopes))
	}
}
