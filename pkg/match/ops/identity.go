package ops

import (
	"fmt"

	"github.com/byteloom/pointcut/pkg/method"
)

// isMatcher matches the one member a ref identifies.
type isMatcher struct {
	ref method.Ref
}

func (im *isMatcher) String() string {
	return fmt.Sprintf("(is %q)", im.ref)
}

func (im *isMatcher) Matches(m method.Description) bool {
	return m.Represents(im.ref)
}

// Is matches exactly the method or constructor the ref identifies.
func Is(ref method.Ref) MethodMatcher {
	return j(&isMatcher{ref: ref})
}
