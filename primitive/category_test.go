package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowdoc/primitive"
)

func TestParseCategories(t *testing.T) {
	t.Parallel()

	got, err := primitive.ParseCategories("default", " Text-Number ")
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryDefault|primitive.CategoryTextNumber, got)

	got, err = primitive.ParseCategories()
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryEnum(primitive.CategoryNone), got)

	_, err = primitive.ParseCategories("bogus")
	require.Error(t, err)
}

func TestAllowed(t *testing.T) {
	t.Parallel()

	identity := primitive.ConversionPair{From: primitive.KindString, To: primitive.KindString}
	assert.True(t, primitive.Allowed(identity, primitive.CategoryNone))

	narrowing := primitive.ConversionPair{From: primitive.KindInt64, To: primitive.KindInt16}
	assert.False(t, primitive.Allowed(narrowing, primitive.CategorySafeNumber))
	assert.True(t, primitive.Allowed(narrowing, primitive.CategoryCheckedNumber))

	numericBool := primitive.ConversionPair{From: primitive.KindBool, To: primitive.KindInt}
	assert.False(t, primitive.Allowed(numericBool, primitive.CategoryDefault))
	assert.True(t, primitive.Allowed(numericBool, primitive.CategoryAll))
}

func TestEveryAllowedPairHasAConverter(t *testing.T) {
	t.Parallel()

	pairs := primitive.Pairs(primitive.CategoryAll)
	assert.NotEmpty(t, pairs)

	for _, pair := range pairs {
		assert.True(t, primitive.HasConverter(pair), "%s -> %s", pair.From, pair.To)
	}
}
