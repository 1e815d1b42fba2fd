package ast

// FieldType is an enumeration of specific types relevant to lexing and
// parsing a filter.
type FieldType int

const (
	FieldTypeDefault FieldType = iota
	FieldTypeSequence
	FieldTypeFlag
)

// Field is a Lexer input which acts as a mapping of identifiers used to lex/parse filters.
type Field struct {
	// Name contains the name of the specific field as it appears in language.
	Name string

	fieldType FieldType
}

// Field equivalence is determined by name and type.
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return false
	}

	return f.Name == other.Name && f.fieldType == other.fieldType
}

// String returns the string representation for the Field
func (f *Field) String() string {
	if f == nil {
		return "<nil field>"
	}
	return f.Name
}

// IsSequence returns true if the field holds an ordered value list. This instructs the
// parser that a comparison's values form a single ordered operand rather than alternatives.
func (f *Field) IsSequence() bool {
	return f.fieldType == FieldTypeSequence
}

// IsFlag returns true if the field is a flag. This instructs the lexer that the field
// stands alone as a boolean keyword and takes no op or value.
func (f *Field) IsFlag() bool {
	return f.fieldType == FieldTypeFlag
}

// NewField creates a default string field using the provided name.
func NewField[T ~string](name T) *Field {
	return &Field{
		Name:      string(name),
		fieldType: FieldTypeDefault,
	}
}

// NewSequenceField creates a sequence field using the provided name.
func NewSequenceField[T ~string](name T) *Field {
	return &Field{
		Name:      string(name),
		fieldType: FieldTypeSequence,
	}
}

// NewFlagField creates a new flag field using the provided name.
func NewFlagField[T ~string](name T) *Field {
	return &Field{
		Name:      string(name),
		fieldType: FieldTypeFlag,
	}
}
