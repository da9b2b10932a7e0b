package ignore

import (
	"path/filepath"
	"strings"
)

// Verdict is the tri-state outcome of rule evaluation for one entry.
type Verdict int

const (
	// VerdictNone means no rule matched the entry.
	VerdictNone Verdict = iota
	// VerdictExclude means the last matching rule rejects the entry.
	VerdictExclude
	// VerdictInclude means the last matching rule re-includes the entry.
	VerdictInclude
)

type scope struct {
	root  string
	rules []Rule
}

// Stack tracks the ignore scopes active along the current traversal path.
// Scopes are evaluated outermost first and the last matching rule wins, so
// rules declared deeper in the tree override inherited ones. The global
// scope holds explicitly supplied patterns and is evaluated after every
// file-based scope, giving command-line patterns the final say.
type Stack struct {
	scopes          []scope
	globalScope     scope
	globalFilesOnly bool
}

// NewStack creates a stack whose global rules are anchored at globalRoot.
// When filesOnly is set, a rejection produced solely by a global rule is
// suppressed for directory candidates so explicit patterns exclude files
// without pruning whole subtrees.
func NewStack(globalRoot string, globalRules []Rule, filesOnly bool) *Stack {
	return &Stack{
		globalScope:     scope{root: globalRoot, rules: globalRules},
		globalFilesOnly: filesOnly,
	}
}

// Push activates the rules scoped to directoryPath for its subtree.
func (stack *Stack) Push(directoryPath string, rules []Rule) {
	stack.scopes = append(stack.scopes, scope{root: directoryPath, rules: rules})
}

// Pop deactivates the most recently pushed scope.
func (stack *Stack) Pop() {
	if len(stack.scopes) == 0 {
		return
	}
	stack.scopes = stack.scopes[:len(stack.scopes)-1]
}

// Excluded reports whether the entry at absolutePath should be excluded.
// The candidate is evaluated against every active scope relative to that
// scope's root; later matches override earlier ones.
func (stack *Stack) Excluded(absolutePath string, isDirectory bool) bool {
	fileVerdict := VerdictNone
	for _, activeScope := range stack.scopes {
		relativePath, underScope := scopeRelativePath(activeScope.root, absolutePath)
		if !underScope {
			continue
		}
		for _, rule := range activeScope.rules {
			if rule.AppliesTo(relativePath, isDirectory) {
				fileVerdict = ruleVerdict(rule)
			}
		}
	}

	globalVerdict := VerdictNone
	if len(stack.globalScope.rules) > 0 {
		relativePath, underScope := scopeRelativePath(stack.globalScope.root, absolutePath)
		if underScope {
			for _, rule := range stack.globalScope.rules {
				if rule.AppliesTo(relativePath, isDirectory) {
					globalVerdict = ruleVerdict(rule)
				}
			}
		}
	}

	finalVerdict := fileVerdict
	if globalVerdict != VerdictNone {
		finalVerdict = globalVerdict
	}
	if finalVerdict == VerdictExclude && stack.globalFilesOnly && isDirectory &&
		globalVerdict == VerdictExclude && fileVerdict != VerdictExclude {
		return false
	}
	return finalVerdict == VerdictExclude
}

func ruleVerdict(rule Rule) Verdict {
	if rule.Negated {
		return VerdictInclude
	}
	return VerdictExclude
}

// scopeRelativePath converts absolutePath into slash-separated form relative
// to the scope root. Entries outside the scope report underScope=false.
func scopeRelativePath(scopeRoot, absolutePath string) (string, bool) {
	relativePath, relError := filepath.Rel(scopeRoot, absolutePath)
	if relError != nil {
		return "", false
	}
	slashPath := filepath.ToSlash(relativePath)
	if slashPath == "." || slashPath == ".." || strings.HasPrefix(slashPath, "../") {
		return "", false
	}
	return slashPath, true
}
