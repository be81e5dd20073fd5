package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnName(t *testing.T) {
	require.Equal(t, "A", ColumnName(1))
	require.Equal(t, "B", ColumnName(2))
	require.Equal(t, "Z", ColumnName(26))
	require.Equal(t, "AA", ColumnName(27))
	require.Equal(t, "AB", ColumnName(28))
	require.Equal(t, "AZ", ColumnName(52))
	require.Equal(t, "BA", ColumnName(53))
	require.Equal(t, "ZZ", ColumnName(702))
	require.Equal(t, "AAA", ColumnName(703))
}
