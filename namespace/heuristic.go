package namespace

import (
	"regexp"
	"strings"
)

var letterSegment = regexp.MustCompile(`^[A-Za-z]+$`)

// Heuristic derives output namespace names for XML namespaces that have no
// explicit mapping.
type Heuristic struct {
	// Prefix is prepended to every derived name.
	Prefix string
	Scheme NamingScheme
}

// Name derives a dotted name from the path segments of uri. Only purely alphabetic
// segments are kept, and the segment "schema" is always dropped:
//
//	http://example.com/schema/orders  ->  Orders
//	urn:acme:v2                       ->  ""
//
// The result may be empty when nothing qualifies and no prefix is set.
func (h Heuristic) Name(uri string) string {
	var parts []string
	for _, segment := range strings.Split(uri, "/") {
		if segment == "schema" || !letterSegment.MatchString(segment) {
			continue
		}
		parts = append(parts, TitleCase(segment, h.Scheme))
	}

	name := strings.Join(parts, ".")
	if h.Prefix == "" {
		return name
	}
	if name == "" {
		return h.Prefix
	}
	return h.Prefix + "." + name
}

// Resolve implements Fallback by deriving a name from the key's namespace.
func (h Heuristic) Resolve(key Key) string {
	return h.Name(key.XMLNamespace)
}
