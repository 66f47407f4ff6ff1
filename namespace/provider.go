package namespace

// Fallback supplies a name for keys without an explicit mapping.
type Fallback interface {
	Resolve(key Key) string
}

// FallbackFunc adapts an ordinary function to the Fallback interface.
type FallbackFunc func(key Key) string

// Resolve calls f(key).
func (f FallbackFunc) Resolve(key Key) string {
	return f(key)
}

// Provider resolves schema namespaces to output namespace names.
//
// Lookup order is: exact key, then the same namespace without a source scope, then
// the fallback. Providers are immutable once built and safe for concurrent use.
type Provider struct {
	table    map[Key]string
	order    []Key
	fallback Fallback
}

// NewProvider builds a provider from mappings in command-line order. When several
// mappings share a key the last one wins. A nil fallback resolves unmapped keys to "".
func NewProvider(mappings []Mapping, fallback Fallback) *Provider {
	p := &Provider{
		table:    make(map[Key]string, len(mappings)),
		fallback: fallback,
	}
	for _, m := range mappings {
		if _, seen := p.table[m.Key]; !seen {
			p.order = append(p.order, m.Key)
		}
		p.table[m.Key] = m.Target
	}
	return p
}

// Resolve returns the output namespace name for key.
func (p *Provider) Resolve(key Key) string {
	if name, ok := p.Lookup(key); ok {
		return name
	}
	if p.fallback == nil {
		return ""
	}
	return p.fallback.Resolve(key)
}

// Lookup consults only the explicit mappings. The boolean reports whether one matched.
func (p *Provider) Lookup(key Key) (string, bool) {
	if name, ok := p.table[key]; ok {
		return name, true
	}
	if key.Scoped {
		if name, ok := p.table[key.Unscoped()]; ok {
			return name, true
		}
	}
	return "", false
}

// Len returns the number of distinct explicit keys.
func (p *Provider) Len() int {
	return len(p.order)
}

// Mappings returns the effective explicit mappings, ordered by the first appearance
// of each key.
func (p *Provider) Mappings() []Mapping {
	result := make([]Mapping, 0, len(p.order))
	for _, key := range p.order {
		result = append(result, Mapping{Key: key, Target: p.table[key]})
	}
	return result
}
