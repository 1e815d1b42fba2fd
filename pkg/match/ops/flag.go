package ops

import (
	"fmt"

	"github.com/byteloom/pointcut/pkg/method"
)

// traitMatcher tests one boolean trait of a description.
type traitMatcher struct {
	trait string
	fn    func(method.Description) bool
}

func (tm *traitMatcher) String() string {
	return fmt.Sprintf("(flag %s)", tm.trait)
}

func (tm *traitMatcher) Matches(m method.Description) bool {
	return tm.fn(m)
}

// IsVarArgs matches methods declared with a variadic parameter.
func IsVarArgs() MethodMatcher {
	return j(&traitMatcher{trait: "varargs", fn: method.Description.IsVarArgs})
}

// IsSynthetic matches compiler emitted methods.
func IsSynthetic() MethodMatcher {
	return j(&traitMatcher{trait: "synthetic", fn: method.Description.IsSynthetic})
}

// IsBridge matches compiler emitted bridge methods.
func IsBridge() MethodMatcher {
	return j(&traitMatcher{trait: "bridge", fn: method.Description.IsBridge})
}

// IsConstructor matches constructors.
func IsConstructor() MethodMatcher {
	return j(&traitMatcher{trait: "constructor", fn: method.Description.IsConstructor})
}
