package method

import "strings"

// Class is a plain value implementation of Type. Tests and adapters that
// already hold resolved metadata can build Class graphs directly; the
// matcher packages only ever see the Type interface.
type Class struct {
	// TypeName is the binary name ("com.acme.Outer$Inner") or primitive
	// keyword ("int").
	TypeName string

	// Supers holds the direct supertype and directly implemented
	// interfaces. Assignability walks this graph depth first.
	Supers []*Class

	// Members holds the methods and constructors physically declared on
	// the class.
	Members []*Member
}

func (c *Class) Name() string {
	return c.TypeName
}

// PackageName derives the package from the binary name. Inner classes keep
// their dollar separated simple name, so the last '.' still bounds the
// package.
func (c *Class) PackageName() string {
	i := strings.LastIndex(c.TypeName, ".")
	if i < 0 {
		return ""
	}
	return c.TypeName[:i]
}

func (c *Class) AssignableTo(other Type) bool {
	if Same(c, other) {
		return true
	}

	for _, super := range c.Supers {
		if super.AssignableTo(other) {
			return true
		}
	}

	return false
}

// Declared searches the members physically declared on the class for a
// method with the given name and exact parameter sequence. Constructors and
// type initializers are skipped, mirroring a reflective getDeclaredMethod
// probe.
func (c *Class) Declared(name string, parameterTypes []Type) (Description, bool) {
	for _, m := range c.Members {
		if m.MemberName == ConstructorName || m.MemberName == TypeInitializerName {
			continue
		}
		if m.MemberName != name {
			continue
		}
		if !SameTypes(m.Params, parameterTypes) {
			continue
		}

		return m, true
	}

	return nil, false
}

// Declare appends the member to the class and back-links its declaring
// type. The member is returned for use in fixtures.
func (c *Class) Declare(m *Member) *Member {
	m.Owner = c
	c.Members = append(c.Members, m)
	return m
}

// Member is a plain value implementation of Description.
type Member struct {
	// MemberName is the simple name; "<init>" for constructors, "<clinit>"
	// for type initializers.
	MemberName string

	// Owner is the declaring type. Class.Declare sets this automatically.
	Owner *Class

	// Mods holds the JVM access flags. The vararg, synthetic, and bridge
	// accessors derive from these bits.
	Mods Modifiers

	// Params holds the parameter types in declaration order.
	Params []Type

	// Return holds the return type; nil is reported as void.
	Return Type

	// Throws holds the declared throwable types.
	Throws []Type
}

func (m *Member) Name() string {
	return m.MemberName
}

func (m *Member) DeclaringType() Type {
	return m.Owner
}

func (m *Member) Modifiers() Modifiers {
	return m.Mods
}

func (m *Member) ParameterTypes() []Type {
	return m.Params
}

func (m *Member) ReturnType() Type {
	if m.Return == nil {
		return Void()
	}
	return m.Return
}

func (m *Member) ExceptionTypes() []Type {
	return m.Throws
}

func (m *Member) IsVarArgs() bool {
	return m.Mods.Has(ModifierVarArgs)
}

func (m *Member) IsSynthetic() bool {
	return m.Mods.Has(ModifierSynthetic)
}

func (m *Member) IsBridge() bool {
	return m.Mods.Has(ModifierBridge)
}

func (m *Member) IsConstructor() bool {
	return m.MemberName == ConstructorName
}

func (m *Member) Represents(ref Ref) bool {
	return RefOf(m) == ref
}

var voidType = &Class{TypeName: VoidTypeName}

// Void returns the void pseudo type.
func Void() Type {
	return voidType
}

// Object builds a fresh root object type carrying the default members the
// java.lang.Object contract declares. Each call returns an independent
// graph so fixtures can extend it without sharing state.
func Object() *Class {
	obj := &Class{TypeName: ObjectTypeName}
	str := &Class{TypeName: "java.lang.String", Supers: []*Class{obj}}

	obj.Declare(&Member{MemberName: ConstructorName, Mods: ModifierPublic})
	obj.Declare(&Member{MemberName: "equals", Mods: ModifierPublic, Params: []Type{obj}, Return: &Class{TypeName: "boolean"}})
	obj.Declare(&Member{MemberName: "hashCode", Mods: ModifierPublic | ModifierNative, Return: &Class{TypeName: "int"}})
	obj.Declare(&Member{MemberName: "toString", Mods: ModifierPublic, Return: str})
	obj.Declare(&Member{MemberName: "finalize", Mods: ModifierProtected, Throws: []Type{&Class{TypeName: "java.lang.Throwable"}}})

	return obj
}
