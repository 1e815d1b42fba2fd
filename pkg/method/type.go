package method

// Type is a minimal token for a JVM type. Matchers compare types by name,
// so two Type values are interchangeable whenever their names agree.
type Type interface {
	// Name returns the binary name of the type ("java.util.Map$Entry") or
	// the primitive keyword ("int", "void").
	Name() string

	// PackageName returns the package portion of the name. Primitives and
	// default-package types return "".
	PackageName() string

	// AssignableTo reports whether a value of this type can stand where the
	// other type is required, walking this type's own supertypes.
	AssignableTo(other Type) bool

	// Declared looks up a method physically declared on this type with the
	// given name and exact parameter type sequence. Constructors and type
	// initializers are never returned. The second result is false when no
	// such method exists.
	Declared(name string, parameterTypes []Type) (Description, bool)
}

// Same reports type equality by name.
func Same(a, b Type) bool {
	return a.Name() == b.Name()
}

// SameTypes reports whether two type sequences have equal length and equal
// types at every position.
func SameTypes(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Same(a[i], b[i]) {
			return false
		}
	}

	return true
}
