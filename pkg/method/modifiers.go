package method

import "strings"

// Modifiers is a JVM method access-flag bit set.
type Modifiers uint32

// The JVM access_flags values for methods, per the class file format.
const (
	ModifierPublic       Modifiers = 0x0001
	ModifierPrivate      Modifiers = 0x0002
	ModifierProtected    Modifiers = 0x0004
	ModifierStatic       Modifiers = 0x0008
	ModifierFinal        Modifiers = 0x0010
	ModifierSynchronized Modifiers = 0x0020
	ModifierBridge       Modifiers = 0x0040
	ModifierVarArgs      Modifiers = 0x0080
	ModifierNative       Modifiers = 0x0100
	ModifierAbstract     Modifiers = 0x0400
	ModifierStrict       Modifiers = 0x0800
	ModifierSynthetic    Modifiers = 0x1000
)

// modifierNames lists each flag with its source-level spelling, in the
// order java.lang.reflect.Modifier.toString uses, with the flags that have
// no source spelling appended.
var modifierNames = []struct {
	flag Modifiers
	name string
}{
	{ModifierPublic, "public"},
	{ModifierProtected, "protected"},
	{ModifierPrivate, "private"},
	{ModifierAbstract, "abstract"},
	{ModifierStatic, "static"},
	{ModifierFinal, "final"},
	{ModifierSynchronized, "synchronized"},
	{ModifierNative, "native"},
	{ModifierStrict, "strictfp"},
	{ModifierBridge, "bridge"},
	{ModifierVarArgs, "varargs"},
	{ModifierSynthetic, "synthetic"},
}

// Has returns true if any bit of flag is set.
func (m Modifiers) Has(flag Modifiers) bool {
	return m&flag != 0
}

// String returns the set flags as a space separated list.
func (m Modifiers) String() string {
	var names []string
	for _, mn := range modifierNames {
		if m.Has(mn.flag) {
			names = append(names, mn.name)
		}
	}
	return strings.Join(names, " ")
}
