package ops

import (
	"github.com/byteloom/pointcut/pkg/method"
)

// IsTypeInitializer matches type initializers.
func IsTypeInitializer() MethodMatcher {
	return Named(method.TypeInitializerName)
}

// IsMethod matches plain methods, the members that are neither constructors
// nor type initializers.
func IsMethod() MethodMatcher {
	return Not(Or(IsConstructor(), IsTypeInitializer()))
}

// IsFinalizer matches any parameterless method named finalize, wherever it
// is declared.
func IsFinalizer() MethodMatcher {
	return Named("finalize").And(TakesArgumentCount(0))
}

// defaultFinalizeMatcher matches the root object type's own finalize.
type defaultFinalizeMatcher struct{}

func (dfm *defaultFinalizeMatcher) String() string {
	return "(defaultfinalize)"
}

func (dfm *defaultFinalizeMatcher) Matches(m method.Description) bool {
	return m.DeclaringType().Name() == method.ObjectTypeName &&
		m.Name() == "finalize" &&
		len(m.ParameterTypes()) == 0
}

// IsDefaultFinalize matches the finalize method the root object type itself
// declares. An override declared further down never matches, which is what
// sets this apart from DeclaredIn over the root type.
func IsDefaultFinalize() MethodMatcher {
	return j(&defaultFinalizeMatcher{})
}

// IsHashCode matches hashCode().
func IsHashCode() MethodMatcher {
	return Named("hashCode").And(TakesArgumentCount(0))
}

// IsEquals matches equals(Object).
func IsEquals() MethodMatcher {
	return Named("equals").And(TakesArguments(method.Object()))
}

// IsToString matches toString().
func IsToString() MethodMatcher {
	return Named("toString").And(TakesArgumentCount(0))
}
