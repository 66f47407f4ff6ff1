package generator

import (
	"testing"

	"github.com/joshgarnett/xsd-classgen/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegerType(t *testing.T) {
	t.Run("Short And Long Spellings", func(t *testing.T) {
		for input, want := range map[string]IntegerType{
			"i": IntegerInt, "int": IntegerInt,
			"l": IntegerLong, "long": IntegerLong,
			"d": IntegerDecimal, "decimal": IntegerDecimal,
		} {
			got, err := ParseIntegerType(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("Unknown Value Fails", func(t *testing.T) {
		_, err := ParseIntegerType("short")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEnumValue)

		var optErr *OptionError
		require.ErrorAs(t, err, &optErr)
		assert.Equal(t, "integer", optErr.Option)
		assert.Equal(t, "short", optErr.Value)
	})

	t.Run("Case Sensitive", func(t *testing.T) {
		_, err := ParseIntegerType("Int")
		assert.ErrorIs(t, err, ErrInvalidEnumValue)
	})
}

func TestParseCodeTypeReferenceOptions(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		opts, err := ParseCodeTypeReferenceOptions("")
		require.NoError(t, err)
		assert.Equal(t, CodeTypeReferenceOptions(0), opts)
		assert.Equal(t, "None", opts.String())
	})

	t.Run("Single", func(t *testing.T) {
		opts, err := ParseCodeTypeReferenceOptions("GlobalReference")
		require.NoError(t, err)
		assert.Equal(t, GlobalReference, opts)
	})

	t.Run("Combined", func(t *testing.T) {
		opts, err := ParseCodeTypeReferenceOptions("GenericTypeParameter, GlobalReference")
		require.NoError(t, err)
		assert.Equal(t, GlobalReference|GenericTypeParameter, opts)
		assert.Equal(t, "GlobalReference, GenericTypeParameter", opts.String())
	})

	t.Run("Unknown Flag", func(t *testing.T) {
		_, err := ParseCodeTypeReferenceOptions("GlobalReference,globalreference")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEnumValue)
		assert.Contains(t, err.Error(), "globalreference")
	})
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	assert.Equal(t, IntegerString, cfg.IntegerType)
	assert.Equal(t, namespace.PascalCase, cfg.NamingScheme)
	assert.True(t, cfg.GenerateInterfaces)
	assert.Equal(t, "Collection", cfg.CollectionType.Name)
	assert.Nil(t, cfg.CollectionImplementationType)
	assert.True(t, cfg.GenerateDesignerCategoryAttribute)
	assert.True(t, cfg.GenerateSerializableAttribute)
	assert.Equal(t, DataAnnotationAll, cfg.DataAnnotationMode)
	assert.False(t, cfg.UseXElementForAny)
}

func TestApplyPortable(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.ApplyPortable()

	assert.True(t, cfg.UseXElementForAny)
	assert.False(t, cfg.GenerateDesignerCategoryAttribute)
	assert.False(t, cfg.GenerateSerializableAttribute)
	assert.Equal(t, DataAnnotationNone, cfg.DataAnnotationMode)
	assert.Equal(t, "None", cfg.DataAnnotationMode.String())
}
