package ops

import (
	"fmt"

	"github.com/byteloom/pointcut/pkg/method"
)

// modifierMatcher matches descriptions carrying a modifier bit.
type modifierMatcher struct {
	mask method.Modifiers
}

func (mm *modifierMatcher) String() string {
	return fmt.Sprintf("(modifier %s)", mm.mask)
}

func (mm *modifierMatcher) Matches(m method.Description) bool {
	return m.Modifiers().Has(mm.mask)
}

func withModifier(mask method.Modifiers) MethodMatcher {
	return j(&modifierMatcher{mask: mask})
}

// IsPublic matches public methods.
func IsPublic() MethodMatcher { return withModifier(method.ModifierPublic) }

// IsProtected matches protected methods.
func IsProtected() MethodMatcher { return withModifier(method.ModifierProtected) }

// IsPrivate matches private methods.
func IsPrivate() MethodMatcher { return withModifier(method.ModifierPrivate) }

// IsStatic matches static methods.
func IsStatic() MethodMatcher { return withModifier(method.ModifierStatic) }

// IsFinal matches final methods.
func IsFinal() MethodMatcher { return withModifier(method.ModifierFinal) }

// IsSynchronized matches synchronized methods.
func IsSynchronized() MethodMatcher { return withModifier(method.ModifierSynchronized) }

// IsNative matches native methods.
func IsNative() MethodMatcher { return withModifier(method.ModifierNative) }

// IsStrict matches strictfp methods.
func IsStrict() MethodMatcher { return withModifier(method.ModifierStrict) }

// IsPackagePrivate matches methods with default visibility, the ones that
// are neither public, protected, nor private.
func IsPackagePrivate() MethodMatcher {
	return Not(Or(IsPublic(), IsProtected(), IsPrivate()))
}
