package ops

import (
	"fmt"
	"strings"

	"github.com/byteloom/pointcut/pkg/method"
)

// returnsMatcher matches by exact return type.
type returnsMatcher struct {
	typ method.Type
}

func (rm *returnsMatcher) String() string {
	return fmt.Sprintf("(returns %q)", rm.typ.Name())
}

func (rm *returnsMatcher) Matches(m method.Description) bool {
	return method.Same(m.ReturnType(), rm.typ)
}

// Returns matches methods by their exact return type. Constructors and void
// methods report the void pseudo type, so Returns(method.Void()) selects
// both.
func Returns(t method.Type) MethodMatcher {
	return j(&returnsMatcher{typ: t})
}

// argumentsMatcher matches an exact parameter sequence.
type argumentsMatcher struct {
	types []method.Type
}

func (am *argumentsMatcher) String() string {
	if len(am.types) == 0 {
		return "(args)"
	}

	quoted := make([]string, len(am.types))
	for i, t := range am.types {
		quoted[i] = fmt.Sprintf("%q", t.Name())
	}
	return fmt.Sprintf("(args %s)", strings.Join(quoted, ","))
}

func (am *argumentsMatcher) Matches(m method.Description) bool {
	return method.SameTypes(m.ParameterTypes(), am.types)
}

// TakesArguments matches methods whose parameter sequence equals the given
// types exactly: same order, same count. With no arguments it matches only
// parameterless methods.
func TakesArguments(types ...method.Type) MethodMatcher {
	return j(&argumentsMatcher{types: types})
}

// argumentCountMatcher matches on the number of declared parameters.
type argumentCountMatcher struct {
	count int
}

func (acm *argumentCountMatcher) String() string {
	return fmt.Sprintf("(argcount %d)", acm.count)
}

func (acm *argumentCountMatcher) Matches(m method.Description) bool {
	return len(m.ParameterTypes()) == acm.count
}

// TakesArgumentCount matches methods declaring exactly count parameters.
func TakesArgumentCount(count int) MethodMatcher {
	return j(&argumentCountMatcher{count: count})
}

// throwsMatcher matches methods able to throw a given throwable type.
type throwsMatcher struct {
	typ method.Type
}

func (tm *throwsMatcher) String() string {
	return fmt.Sprintf("(throws %q)", tm.typ.Name())
}

func (tm *throwsMatcher) Matches(m method.Description) bool {
	for _, declared := range m.ExceptionTypes() {
		if tm.typ.AssignableTo(declared) {
			return true
		}
	}

	return false
}

// CanThrow matches methods that may legally throw the given checked type:
// some declared throwable must be the type itself or one of its supertypes.
// A method declaring no throwables never matches.
func CanThrow(t method.Type) MethodMatcher {
	return j(&throwsMatcher{typ: t})
}

// declaredInMatcher matches on the physically declaring type.
type declaredInMatcher struct {
	typ method.Type
}

func (dm *declaredInMatcher) String() string {
	return fmt.Sprintf("(declaredin %q)", dm.typ.Name())
}

func (dm *declaredInMatcher) Matches(m method.Description) bool {
	if method.Same(m.DeclaringType(), dm.typ) {
		return true
	}

	_, ok := dm.typ.Declared(m.Name(), m.ParameterTypes())
	return ok
}

// DeclaredIn matches methods the given type declares: either the
// description's own declaring type is that type, or the type declares a
// method of the same name and parameter sequence. The second clause makes
// overrides match against the overridden declaration.
func DeclaredIn(t method.Type) MethodMatcher {
	return j(&declaredInMatcher{typ: t})
}

// packageMatcher matches on the declaring type's package.
type packageMatcher struct {
	name string
}

func (pm *packageMatcher) String() string {
	return fmt.Sprintf("(package %q)", pm.name)
}

func (pm *packageMatcher) Matches(m method.Description) bool {
	return m.DeclaringType().PackageName() == pm.name
}

// IsDefinedInPackage matches methods whose declaring type lives in the named
// package. Subpackages do not count.
func IsDefinedInPackage(name string) MethodMatcher {
	return j(&packageMatcher{name: name})
}
