package generator

import (
	"errors"
	"fmt"
	"sync"
)

// CollectionType is a collection abstraction the engine knows how to emit.
type CollectionType struct {
	// Name is the short registered name, e.g. "List".
	Name string
	// Aliases are alternative spellings accepted on the command line, typically the
	// fully qualified generic type name.
	Aliases []string
	// Ordered reports whether element order is significant.
	Ordered bool
	// Observable reports whether the collection raises change notifications.
	Observable bool
}

func (c CollectionType) String() string {
	return c.Name
}

var (
	collectionsMu sync.RWMutex
	collections   = map[string]CollectionType{}
	// lookup by name or alias
	collectionIndex = map[string]string{}
)

func init() {
	for _, ct := range []CollectionType{
		{Name: "Collection", Aliases: []string{"System.Collections.ObjectModel.Collection`1"}, Ordered: true},
		{Name: "List", Aliases: []string{"System.Collections.Generic.List`1"}, Ordered: true},
		{Name: "ObservableCollection", Aliases: []string{"System.Collections.ObjectModel.ObservableCollection`1"}, Ordered: true, Observable: true},
		{Name: "Array", Aliases: []string{"T[]"}, Ordered: true},
	} {
		if err := RegisterCollection(ct); err != nil {
			panic(err)
		}
	}
}

// RegisterCollection adds ct to the set of resolvable collection types. Its name and
// aliases must not collide with anything already registered.
func RegisterCollection(ct CollectionType) error {
	if ct.Name == "" {
		return errors.New("collection type name is empty")
	}

	collectionsMu.Lock()
	defer collectionsMu.Unlock()

	names := append([]string{ct.Name}, ct.Aliases...)
	for _, n := range names {
		if owner, exists := collectionIndex[n]; exists {
			return fmt.Errorf("collection type %q already registered by %q", n, owner)
		}
	}

	collections[ct.Name] = ct
	for _, n := range names {
		collectionIndex[n] = ct.Name
	}
	return nil
}

// LookupCollection resolves a registered collection type by name or alias.
func LookupCollection(name string) (CollectionType, error) {
	collectionsMu.RLock()
	defer collectionsMu.RUnlock()

	if owner, ok := collectionIndex[name]; ok {
		return collections[owner], nil
	}
	return CollectionType{}, &OptionError{Option: "collection type", Value: name, Err: ErrUnresolvedType}
}

// DefaultCollection returns the collection type used when none is configured.
func DefaultCollection() CollectionType {
	ct, err := LookupCollection("Collection")
	if err != nil {
		panic(err)
	}
	return ct
}
