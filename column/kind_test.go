package column_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"rowdoc/column"
)

func ExampleKind_Short() {
	fmt.Println(column.KindDateTime2)
	fmt.Println(column.KindDateTime2.Short())
	fmt.Println(column.Kind(0))
	// Output:
	// KindDateTime2
	// datetime2
	// Kind(0)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for k := column.Kind(1); int(k) < column.KindTotal; k++ {
		got, ok := column.ParseKind(k.Short())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)

		got, ok = column.ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	got, ok := column.ParseKind("DATETIMEOFFSET")
	assert.True(t, ok)
	assert.Equal(t, column.KindDateTimeOffset, got)

	_, ok = column.ParseKind("geography")
	assert.False(t, ok)
}

func TestKindClasses(t *testing.T) {
	t.Parallel()

	assert.True(t, column.KindUint8.IsInteger())
	assert.False(t, column.KindFloat32.IsInteger())
	assert.True(t, column.KindFloat32.IsFloat())
	assert.True(t, column.KindXML.IsText())
	assert.False(t, column.KindGUID.IsText())
	assert.True(t, column.KindSmallDateTime.IsTemporal())
	assert.False(t, column.KindNumeric.IsTemporal())
}
