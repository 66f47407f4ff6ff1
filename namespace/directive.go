package namespace

import "strings"

// ParseDirective parses a single mapping directive of the form
//
//	xmlNamespace[|sourceFile]=targetNamespace
//
// The directive is split on the first '=' and the left side on the first '|', so
// the target may itself contain '='. An empty target is accepted as written. When
// prefix is non-empty the target becomes prefix + "." + target.
func ParseDirective(raw, prefix string) (Mapping, error) {
	return parseDirective(raw, prefix, -1)
}

// ParseDirectives parses directives in command-line order and stops at the first
// malformed one.
func ParseDirectives(raws []string, prefix string) ([]Mapping, error) {
	mappings := make([]Mapping, 0, len(raws))
	for i, raw := range raws {
		m, err := parseDirective(raw, prefix, i)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

func parseDirective(raw, prefix string, index int) (Mapping, error) {
	xmlNs, target, found := strings.Cut(raw, "=")
	if !found {
		return Mapping{}, &DirectiveError{Directive: raw, Index: index, Reason: "missing '=' between XML namespace and target namespace"}
	}

	key := NewKey(xmlNs)
	if ns, source, scoped := strings.Cut(xmlNs, "|"); scoped {
		// Any relative or absolute location is accepted and kept exactly as typed.
		key = NewScopedKey(source, ns)
	}

	if prefix != "" {
		target = prefix + "." + target
	}

	return Mapping{Key: key, Target: target}, nil
}
