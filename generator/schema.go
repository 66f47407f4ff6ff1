package generator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"aqwari.net/xml/xmltree"
)

// XMLSchemaNamespace is the namespace of XML Schema definition documents.
const XMLSchemaNamespace = "http://www.w3.org/2001/XMLSchema"

var errNotSchema = errors.New("root element is not xs:schema")

// SchemaHeader is the part of a schema document that namespace resolution needs.
type SchemaHeader struct {
	TargetNamespace string
	Imports         []SchemaImport
	Includes        []string
}

// SchemaImport is a single xs:import declaration.
type SchemaImport struct {
	Namespace      string
	SchemaLocation string
}

// ReadSchemaHeader reads the target namespace and the import and include
// declarations of the schema at path.
func ReadSchemaHeader(path string) (SchemaHeader, error) {
	file, err := os.Open(path)
	if err != nil {
		return SchemaHeader{}, fmt.Errorf("opening schema file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return SchemaHeader{}, fmt.Errorf("reading schema file: %w", err)
	}

	header, err := parseSchemaHeader(data)
	if err != nil {
		return SchemaHeader{}, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	return header, nil
}

func parseSchemaHeader(data []byte) (SchemaHeader, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return SchemaHeader{}, err
	}
	if root.Name.Space != XMLSchemaNamespace || root.Name.Local != "schema" {
		return SchemaHeader{}, fmt.Errorf("%w: found {%s}%s", errNotSchema, root.Name.Space, root.Name.Local)
	}

	header := SchemaHeader{
		TargetNamespace: root.Attr("", "targetNamespace"),
	}

	for i := range root.Children {
		child := &root.Children[i]
		if child.Name.Space != XMLSchemaNamespace {
			continue
		}

		switch child.Name.Local {
		case "import":
			header.Imports = append(header.Imports, SchemaImport{
				Namespace:      child.Attr("", "namespace"),
				SchemaLocation: child.Attr("", "schemaLocation"),
			})
		case "include":
			header.Includes = append(header.Includes, child.Attr("", "schemaLocation"))
		}
	}

	return header, nil
}
