// Package namespace maps XML schema namespaces to output namespace names.
//
// Explicit mappings come from directives of the form
//
//	xmlns[|file]=target
//
// and anything not covered by a directive falls back to a name derived from the
// namespace URI itself (see Heuristic).
package namespace

import "fmt"

// Key identifies a schema namespace, optionally scoped to one schema file.
type Key struct {
	// Source is the schema location the key applies to. Only meaningful when Scoped is set.
	Source string
	// Scoped is false for keys that apply to the namespace in every file.
	Scoped bool
	// XMLNamespace is the namespace URI. Empty means "no namespace".
	XMLNamespace string
}

// NewKey creates a key that applies to xmlNamespace regardless of the source file.
func NewKey(xmlNamespace string) Key {
	return Key{XMLNamespace: xmlNamespace}
}

// NewScopedKey creates a key that applies to xmlNamespace only within source.
func NewScopedKey(source, xmlNamespace string) Key {
	return Key{Source: source, Scoped: true, XMLNamespace: xmlNamespace}
}

// Unscoped returns the key with its source scope removed.
func (k Key) Unscoped() Key {
	return NewKey(k.XMLNamespace)
}

func (k Key) String() string {
	if k.Scoped {
		return fmt.Sprintf("%s|%s", k.XMLNamespace, k.Source)
	}
	return k.XMLNamespace
}

// Mapping pairs a key with the output namespace it maps to.
type Mapping struct {
	Key    Key
	Target string
}
