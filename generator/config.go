package generator

import (
	"fmt"
	"strings"

	"github.com/joshgarnett/xsd-classgen/namespace"
)

// IntegerType is the representation used for xs:integer and its derived types.
type IntegerType string

// Integer representations.
const (
	IntegerString  IntegerType = "string"
	IntegerInt     IntegerType = "int"
	IntegerLong    IntegerType = "long"
	IntegerDecimal IntegerType = "decimal"
)

// ParseIntegerType accepts the short or long spelling of an integer representation.
func ParseIntegerType(s string) (IntegerType, error) {
	switch s {
	case "i", "int":
		return IntegerInt, nil
	case "l", "long":
		return IntegerLong, nil
	case "d", "decimal":
		return IntegerDecimal, nil
	}
	return "", &OptionError{Option: "integer", Value: s, Err: ErrInvalidEnumValue}
}

// DataAnnotationMode selects which data annotation attributes are emitted.
type DataAnnotationMode int

// Data annotation modes.
const (
	DataAnnotationAll DataAnnotationMode = iota
	DataAnnotationNone
)

func (m DataAnnotationMode) String() string {
	if m == DataAnnotationNone {
		return "None"
	}
	return "All"
}

// CodeTypeReferenceOptions is a set of flags applied to emitted type references.
type CodeTypeReferenceOptions uint8

// Type reference flags.
const (
	GlobalReference CodeTypeReferenceOptions = 1 << iota
	GenericTypeParameter
)

var typeReferenceNames = []struct {
	name string
	flag CodeTypeReferenceOptions
}{
	{"GlobalReference", GlobalReference},
	{"GenericTypeParameter", GenericTypeParameter},
}

// ParseCodeTypeReferenceOptions parses a comma separated list of flag names.
// Names are matched exactly; an empty string yields no flags.
func ParseCodeTypeReferenceOptions(s string) (CodeTypeReferenceOptions, error) {
	var opts CodeTypeReferenceOptions
	if strings.TrimSpace(s) == "" {
		return opts, nil
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		matched := false
		for _, entry := range typeReferenceNames {
			if entry.name == part {
				opts |= entry.flag
				matched = true
				break
			}
		}
		if !matched {
			return 0, &OptionError{Option: "codeTypeReferenceOptions", Value: part, Err: ErrInvalidEnumValue}
		}
	}
	return opts, nil
}

func (o CodeTypeReferenceOptions) String() string {
	var names []string
	for _, entry := range typeReferenceNames {
		if o&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

// Configuration is everything the engine needs besides the input files.
type Configuration struct {
	// OutputFolder is an absolute path, or empty for the current directory.
	OutputFolder      string
	NamespaceProvider *namespace.Provider

	IntegerType       IntegerType
	NamingScheme      namespace.NamingScheme
	GenerateNullables bool
	EnableDataBinding bool
	EmitOrder         bool
	EntityFramework   bool
	// GenerateInterfaces emits interfaces for groups and attribute groups.
	GenerateInterfaces bool

	CollectionType               CollectionType
	CollectionImplementationType *CollectionType
	CodeTypeReferenceOptions     CodeTypeReferenceOptions

	UseXElementForAny                 bool
	GenerateDesignerCategoryAttribute bool
	GenerateSerializableAttribute     bool
	DataAnnotationMode                DataAnnotationMode

	// Log receives progress messages such as written file names. Nil disables logging.
	Log func(string)
}

// DefaultConfiguration returns the configuration used when no flags are given.
func DefaultConfiguration() Configuration {
	return Configuration{
		IntegerType:                       IntegerString,
		NamingScheme:                      namespace.PascalCase,
		GenerateInterfaces:                true,
		CollectionType:                    DefaultCollection(),
		GenerateDesignerCategoryAttribute: true,
		GenerateSerializableAttribute:     true,
		DataAnnotationMode:                DataAnnotationAll,
	}
}

// ApplyPortable adjusts the configuration for portable class library output.
func (c *Configuration) ApplyPortable() {
	c.UseXElementForAny = true
	c.GenerateDesignerCategoryAttribute = false
	c.GenerateSerializableAttribute = false
	c.DataAnnotationMode = DataAnnotationNone
}

func (c *Configuration) logf(format string, args ...any) {
	if c.Log != nil {
		c.Log(fmt.Sprintf(format, args...))
	}
}
