package namespace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	t.Run("Unscoped", func(t *testing.T) {
		m, err := ParseDirective("http://example.com/orders=Acme.Orders", "")
		require.NoError(t, err)

		assert.Equal(t, NewKey("http://example.com/orders"), m.Key)
		assert.False(t, m.Key.Scoped)
		assert.Equal(t, "Acme.Orders", m.Target)
	})

	t.Run("Scoped To File", func(t *testing.T) {
		m, err := ParseDirective("http://example.com/orders|orders.xsd=Acme.Orders", "")
		require.NoError(t, err)

		assert.Equal(t, NewScopedKey("orders.xsd", "http://example.com/orders"), m.Key)
		assert.Equal(t, "Acme.Orders", m.Target)
	})

	t.Run("Absolute Source", func(t *testing.T) {
		m, err := ParseDirective("urn:a|file:///tmp/a.xsd=A", "")
		require.NoError(t, err)
		assert.Equal(t, "file:///tmp/a.xsd", m.Key.Source)
		assert.Equal(t, "urn:a", m.Key.XMLNamespace)
	})

	t.Run("Splits On First Separator Only", func(t *testing.T) {
		m, err := ParseDirective("http://a/b?x=1", "")
		require.NoError(t, err)
		assert.Equal(t, "http://a/b?x", m.Key.XMLNamespace)
		assert.Equal(t, "1", m.Target)

		m, err = ParseDirective("urn:a|one.xsd|two=T=U", "")
		require.NoError(t, err)
		assert.Equal(t, "urn:a", m.Key.XMLNamespace)
		assert.Equal(t, "one.xsd|two", m.Key.Source)
		assert.Equal(t, "T=U", m.Target)
	})

	t.Run("Empty Parts", func(t *testing.T) {
		m, err := ParseDirective("=Root", "")
		require.NoError(t, err)
		assert.Equal(t, NewKey(""), m.Key)
		assert.Equal(t, "Root", m.Target)

		m, err = ParseDirective("urn:a=", "")
		require.NoError(t, err)
		assert.Equal(t, "", m.Target)

		m, err = ParseDirective("urn:a|=X", "")
		require.NoError(t, err)
		assert.True(t, m.Key.Scoped)
		assert.Equal(t, "", m.Key.Source)
		assert.NotEqual(t, NewKey("urn:a"), m.Key)
	})

	t.Run("Prefix", func(t *testing.T) {
		m, err := ParseDirective("urn:a=Orders", "Gen")
		require.NoError(t, err)
		assert.Equal(t, "Gen.Orders", m.Target)
	})

	t.Run("Missing Separator", func(t *testing.T) {
		_, err := ParseDirective("http://example.com/orders", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedDirective))

		var dirErr *DirectiveError
		require.ErrorAs(t, err, &dirErr)
		assert.Equal(t, "http://example.com/orders", dirErr.Directive)
		assert.Equal(t, -1, dirErr.Index)
	})

	t.Run("Source Kept As Typed", func(t *testing.T) {
		for _, source := range []string{"schemas/100%.xsd", "1a:b.xsd", `C:\schemas\a b.xsd`, "../x.xsd"} {
			m, err := ParseDirective("urn:a|"+source+"=A", "")
			require.NoError(t, err, source)
			assert.Equal(t, NewScopedKey(source, "urn:a"), m.Key, source)
			assert.Equal(t, "A", m.Target, source)
		}
	})
}

func TestParseDirectives(t *testing.T) {
	t.Run("Preserves Order", func(t *testing.T) {
		mappings, err := ParseDirectives([]string{"urn:b=B", "urn:a=A", "urn:b=C"}, "")
		require.NoError(t, err)
		require.Len(t, mappings, 3)
		assert.Equal(t, "B", mappings[0].Target)
		assert.Equal(t, "A", mappings[1].Target)
		assert.Equal(t, "C", mappings[2].Target)
	})

	t.Run("Reports Position", func(t *testing.T) {
		_, err := ParseDirectives([]string{"urn:a=A", "broken"}, "")
		require.Error(t, err)

		var dirErr *DirectiveError
		require.ErrorAs(t, err, &dirErr)
		assert.Equal(t, 1, dirErr.Index)
		assert.Contains(t, err.Error(), "#2")
	})

	t.Run("Empty", func(t *testing.T) {
		mappings, err := ParseDirectives(nil, "Gen")
		require.NoError(t, err)
		assert.Empty(t, mappings)
	})
}
