package ignore

import (
	"strings"
)

const (
	negationPrefix        = "!"
	commentPrefix         = "#"
	directoryOnlySuffix   = "/"
	escapedNegationPrefix = `\!`
	escapedCommentPrefix  = `\#`
)

// Rule is one compiled ignore rule together with its gitignore-style
// modifiers: a leading "!" negates, a trailing "/" restricts the rule to
// directory candidates.
type Rule struct {
	Pattern       Pattern
	Negated       bool
	DirectoryOnly bool
}

// AppliesTo reports whether the rule matches the candidate. Directory-only
// rules never apply to non-directory candidates.
func (rule Rule) AppliesTo(relativePath string, isDirectory bool) bool {
	if rule.DirectoryOnly && !isDirectory {
		return false
	}
	return rule.Pattern.Matches(relativePath)
}

// ParseRuleLine compiles one ignore-file line. The second return value is
// false for blank lines, comments, and lines that are empty after their
// modifiers are stripped.
func ParseRuleLine(line string) (Rule, bool) {
	trimmedLine := strings.TrimSpace(line)
	if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
		return Rule{}, false
	}
	return compileRuleBody(trimmedLine)
}

// ParseRules compiles ignore-file lines in order, dropping blanks and comments.
func ParseRules(lines []string) []Rule {
	rules := make([]Rule, 0, len(lines))
	for _, line := range lines {
		if rule, ok := ParseRuleLine(line); ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

// CompilePatterns compiles explicitly supplied patterns into rules. Unlike
// ignore-file lines, a leading "#" is an ordinary character here.
func CompilePatterns(patterns []string) []Rule {
	rules := make([]Rule, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		if rule, ok := compileRuleBody(trimmedPattern); ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

func compileRuleBody(body string) (Rule, bool) {
	rule := Rule{}
	switch {
	case strings.HasPrefix(body, escapedNegationPrefix), strings.HasPrefix(body, escapedCommentPrefix):
		// the backslash escape is resolved during pattern compilation
	case strings.HasPrefix(body, negationPrefix):
		rule.Negated = true
		body = strings.TrimPrefix(body, negationPrefix)
	}
	if strings.HasSuffix(body, directoryOnlySuffix) {
		rule.DirectoryOnly = true
		body = strings.TrimSuffix(body, directoryOnlySuffix)
	}
	if body == "" {
		return Rule{}, false
	}
	rule.Pattern = Compile(body)
	return rule, true
}
