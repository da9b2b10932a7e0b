// Package ignore implements gitignore-style exclusion: glob pattern
// compilation, rule parsing, and the scoped rule stack consulted during
// traversal.
package ignore

import (
	"path"
	"strings"
)

// tokenKind enumerates the compiled token variants of one path component.
type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenStar
	tokenQuestion
	tokenClass
)

type classRange struct {
	low  rune
	high rune
}

type characterClass struct {
	negated bool
	ranges  []classRange
}

func (class characterClass) matches(candidate rune) bool {
	inSet := false
	for _, currentRange := range class.ranges {
		if candidate >= currentRange.low && candidate <= currentRange.high {
			inSet = true
			break
		}
	}
	return inSet != class.negated
}

type patternToken struct {
	kind    tokenKind
	literal rune
	class   characterClass
}

// patternSegment is one path component of a compiled pattern. An anyDepth
// segment comes from a bare "**" component and matches zero or more
// candidate components.
type patternSegment struct {
	anyDepth bool
	tokens   []patternToken
}

// Pattern is the compiled form of one glob-style ignore pattern. Compilation
// never fails: malformed bracket expressions degrade to literal characters.
type Pattern struct {
	text     string
	baseName bool
	segments []patternSegment
}

// Compile translates a glob-style pattern into its compiled form. A pattern
// without a path separator matches candidate base names at any depth; a
// pattern containing a separator, or starting with one, matches the whole
// path relative to the scope root.
func Compile(text string) Pattern {
	anchored := strings.HasPrefix(text, "/")
	body := strings.TrimPrefix(text, "/")
	compiled := Pattern{text: text}
	if body == "" {
		return compiled
	}
	compiled.baseName = !anchored && !strings.Contains(body, "/")
	for _, component := range strings.Split(body, "/") {
		if component == "" {
			continue
		}
		if component == "**" {
			compiled.segments = append(compiled.segments, patternSegment{anyDepth: true})
			continue
		}
		compiled.segments = append(compiled.segments, patternSegment{tokens: compileComponent(component)})
	}
	return compiled
}

// String returns the original pattern text.
func (compiled Pattern) String() string {
	return compiled.text
}

// Matches reports whether the slash-separated candidate path, relative to the
// pattern's scope root, matches the compiled pattern.
func (compiled Pattern) Matches(candidate string) bool {
	if len(compiled.segments) == 0 {
		return false
	}
	if compiled.baseName {
		return matchTokens(compiled.segments[0].tokens, []rune(path.Base(candidate)))
	}
	return matchSegments(compiled.segments, splitCandidate(candidate))
}

func splitCandidate(candidate string) []string {
	rawParts := strings.Split(candidate, "/")
	parts := rawParts[:0]
	for _, part := range rawParts {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// matchSegments walks pattern components against candidate components. An
// anyDepth segment in final position must consume at least one component so
// that "dir/**" matches the contents of dir but not dir itself.
func matchSegments(segments []patternSegment, parts []string) bool {
	if len(segments) == 0 {
		return len(parts) == 0
	}
	head := segments[0]
	if head.anyDepth {
		minimumSkip := 0
		if len(segments) == 1 {
			minimumSkip = 1
		}
		for skip := minimumSkip; skip <= len(parts); skip++ {
			if matchSegments(segments[1:], parts[skip:]) {
				return true
			}
		}
		return false
	}
	if len(parts) == 0 {
		return false
	}
	if !matchTokens(head.tokens, []rune(parts[0])) {
		return false
	}
	return matchSegments(segments[1:], parts[1:])
}

func matchTokens(tokens []patternToken, candidate []rune) bool {
	if len(tokens) == 0 {
		return len(candidate) == 0
	}
	head := tokens[0]
	switch head.kind {
	case tokenStar:
		for skip := 0; skip <= len(candidate); skip++ {
			if matchTokens(tokens[1:], candidate[skip:]) {
				return true
			}
		}
		return false
	case tokenQuestion:
		if len(candidate) == 0 {
			return false
		}
		return matchTokens(tokens[1:], candidate[1:])
	case tokenClass:
		if len(candidate) == 0 || !head.class.matches(candidate[0]) {
			return false
		}
		return matchTokens(tokens[1:], candidate[1:])
	default:
		if len(candidate) == 0 || candidate[0] != head.literal {
			return false
		}
		return matchTokens(tokens[1:], candidate[1:])
	}
}

// compileComponent tokenizes a single path component. Runs of consecutive
// asterisks inside a component collapse into one single-component wildcard.
func compileComponent(component string) []patternToken {
	runes := []rune(component)
	tokens := make([]patternToken, 0, len(runes))
	for index := 0; index < len(runes); {
		current := runes[index]
		switch current {
		case '*':
			for index < len(runes) && runes[index] == '*' {
				index++
			}
			tokens = append(tokens, patternToken{kind: tokenStar})
		case '?':
			tokens = append(tokens, patternToken{kind: tokenQuestion})
			index++
		case '\\':
			if index+1 < len(runes) {
				tokens = append(tokens, patternToken{kind: tokenLiteral, literal: runes[index+1]})
				index += 2
				continue
			}
			tokens = append(tokens, patternToken{kind: tokenLiteral, literal: current})
			index++
		case '[':
			class, consumed, valid := compileCharacterClass(runes[index:])
			if !valid {
				tokens = append(tokens, patternToken{kind: tokenLiteral, literal: current})
				index++
				continue
			}
			tokens = append(tokens, patternToken{kind: tokenClass, class: class})
			index += consumed
		default:
			tokens = append(tokens, patternToken{kind: tokenLiteral, literal: current})
			index++
		}
	}
	return tokens
}

// compileCharacterClass parses a bracket expression starting at runes[0].
// It returns valid=false for an unterminated expression, in which case the
// caller treats the opening bracket as a literal character.
func compileCharacterClass(runes []rune) (characterClass, int, bool) {
	index := 1
	class := characterClass{}
	if index < len(runes) && (runes[index] == '!' || runes[index] == '^') {
		class.negated = true
		index++
	}
	closed := false
	first := true
	for index < len(runes) {
		current := runes[index]
		if current == ']' && !first {
			closed = true
			index++
			break
		}
		first = false
		if index+2 < len(runes) && runes[index+1] == '-' && runes[index+2] != ']' {
			class.ranges = append(class.ranges, classRange{low: current, high: runes[index+2]})
			index += 3
			continue
		}
		class.ranges = append(class.ranges, classRange{low: current, high: current})
		index++
	}
	if !closed {
		return characterClass{}, 0, false
	}
	return class, index, true
}
