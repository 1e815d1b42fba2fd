package ops

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/byteloom/pointcut/pkg/log"
	"github.com/byteloom/pointcut/pkg/method"
)

// nameMode selects how a name matcher compares the method name against its
// pattern.
type nameMode int

const (
	nameEquals nameMode = iota
	nameEqualsIgnoreCase
	nameStartsWith
	nameStartsWithIgnoreCase
	nameEndsWith
	nameEndsWithIgnoreCase
	nameContains
	nameContainsIgnoreCase
)

func (nm nameMode) String() string {
	switch nm {
	case nameEquals:
		return "equals"
	case nameEqualsIgnoreCase:
		return "iequals"
	case nameStartsWith:
		return "startswith"
	case nameStartsWithIgnoreCase:
		return "istartswith"
	case nameEndsWith:
		return "endswith"
	case nameEndsWithIgnoreCase:
		return "iendswith"
	case nameContains:
		return "contains"
	case nameContainsIgnoreCase:
		return "icontains"
	default:
		return fmt.Sprintf("Unspecified: %d", int(nm))
	}
}

// nameMatcher compares the simple method name against a fixed pattern.
type nameMatcher struct {
	mode    nameMode
	pattern string
}

func (nm *nameMatcher) String() string {
	return fmt.Sprintf("(name %s %q)", nm.mode, nm.pattern)
}

func (nm *nameMatcher) Matches(m method.Description) bool {
	name := m.Name()
	switch nm.mode {
	case nameEquals:
		return name == nm.pattern
	case nameEqualsIgnoreCase:
		return strings.EqualFold(name, nm.pattern)
	case nameStartsWith:
		return strings.HasPrefix(name, nm.pattern)
	case nameStartsWithIgnoreCase:
		return strings.HasPrefix(strings.ToLower(name), strings.ToLower(nm.pattern))
	case nameEndsWith:
		return strings.HasSuffix(name, nm.pattern)
	case nameEndsWithIgnoreCase:
		return strings.HasSuffix(strings.ToLower(name), strings.ToLower(nm.pattern))
	case nameContains:
		return strings.Contains(name, nm.pattern)
	case nameContainsIgnoreCase:
		return strings.Contains(strings.ToLower(name), strings.ToLower(nm.pattern))
	default:
		log.Errorf("unhandled name mode: %d", int(nm.mode))
		return false
	}
}

// nameRegexMatcher anchors a regular expression against the whole method
// name. The expression is compiled once, at construction.
type nameRegexMatcher struct {
	expr string
	re   *regexp.Regexp
}

func (nrm *nameRegexMatcher) String() string {
	return fmt.Sprintf("(name matches %q)", nrm.expr)
}

func (nrm *nameRegexMatcher) Matches(m method.Description) bool {
	return nrm.re.MatchString(m.Name())
}

// Named matches methods by their exact name.
func Named(name string) MethodMatcher {
	return j(&nameMatcher{mode: nameEquals, pattern: name})
}

// NamedIgnoreCase matches methods by name, ignoring case.
func NamedIgnoreCase(name string) MethodMatcher {
	return j(&nameMatcher{mode: nameEqualsIgnoreCase, pattern: name})
}

// NameStartsWith matches methods whose name starts with the prefix.
func NameStartsWith(prefix string) MethodMatcher {
	return j(&nameMatcher{mode: nameStartsWith, pattern: prefix})
}

// NameStartsWithIgnoreCase matches methods whose name starts with the
// prefix, ignoring case.
func NameStartsWithIgnoreCase(prefix string) MethodMatcher {
	return j(&nameMatcher{mode: nameStartsWithIgnoreCase, pattern: prefix})
}

// NameEndsWith matches methods whose name ends with the suffix.
func NameEndsWith(suffix string) MethodMatcher {
	return j(&nameMatcher{mode: nameEndsWith, pattern: suffix})
}

// NameEndsWithIgnoreCase matches methods whose name ends with the suffix,
// ignoring case.
func NameEndsWithIgnoreCase(suffix string) MethodMatcher {
	return j(&nameMatcher{mode: nameEndsWithIgnoreCase, pattern: suffix})
}

// NameContains matches methods whose name contains the infix.
func NameContains(infix string) MethodMatcher {
	return j(&nameMatcher{mode: nameContains, pattern: infix})
}

// NameContainsIgnoreCase matches methods whose name contains the infix,
// ignoring case.
func NameContainsIgnoreCase(infix string) MethodMatcher {
	return j(&nameMatcher{mode: nameContainsIgnoreCase, pattern: infix})
}

// NameMatches matches methods whose whole name matches the regular
// expression. An expression that does not compile is logged and yields a
// matcher that matches nothing.
func NameMatches(expr string) MethodMatcher {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		log.DedupedErrorf(5, "invalid name pattern %q: %s", expr, err)
		return None()
	}

	return j(&nameRegexMatcher{expr: expr, re: re})
}
