package method

import (
	"fmt"
	"strings"
)

// Ref identifies a single method or constructor by declaring type, name,
// return type, and parameter sequence. Refs built from the same shape
// compare equal with ==, which is what Description.Represents relies on.
type Ref interface {
	fmt.Stringer

	isRef()
}

// MethodRef is the Ref of a named method.
type MethodRef struct {
	declaring string
	name      string
	returns   string
	signature string
}

// NewMethodRef builds the Ref of the method with the given declaring type,
// name, return type, and parameter sequence.
func NewMethodRef(declaring Type, name string, returns Type, parameterTypes ...Type) MethodRef {
	return MethodRef{
		declaring: declaring.Name(),
		name:      name,
		returns:   returns.Name(),
		signature: signatureOf(parameterTypes),
	}
}

func (r MethodRef) isRef() {}

func (r MethodRef) String() string {
	return fmt.Sprintf("%s.%s(%s)", r.declaring, r.name, r.signature)
}

// ConstructorRef is the Ref of a constructor.
type ConstructorRef struct {
	declaring string
	signature string
}

// NewConstructorRef builds the Ref of the constructor with the given
// declaring type and parameter sequence.
func NewConstructorRef(declaring Type, parameterTypes ...Type) ConstructorRef {
	return ConstructorRef{
		declaring: declaring.Name(),
		signature: signatureOf(parameterTypes),
	}
}

func (r ConstructorRef) isRef() {}

func (r ConstructorRef) String() string {
	return fmt.Sprintf("%s.%s(%s)", r.declaring, ConstructorName, r.signature)
}

// RefOf derives the Ref a description answers to. Constructors map to a
// ConstructorRef, everything else to a MethodRef.
func RefOf(m Description) Ref {
	if m.IsConstructor() {
		return ConstructorRef{
			declaring: m.DeclaringType().Name(),
			signature: signatureOf(m.ParameterTypes()),
		}
	}

	return MethodRef{
		declaring: m.DeclaringType().Name(),
		name:      m.Name(),
		returns:   m.ReturnType().Name(),
		signature: signatureOf(m.ParameterTypes()),
	}
}

func signatureOf(parameterTypes []Type) string {
	names := make([]string, len(parameterTypes))
	for i, t := range parameterTypes {
		names[i] = t.Name()
	}
	return strings.Join(names, ",")
}
