package trailers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCELFilterDisabled(t *testing.T) {
	f, err := newCELFilter("")
	require.NoError(t, err)
	require.False(t, f.enabled)
	require.True(t, f.Eval(0, []byte("Any"), []byte("value")))
}

func TestCELFilterKeyMatch(t *testing.T) {
	f, err := newCELFilter(`key == "Signed-off-by"`)
	require.NoError(t, err)
	require.True(t, f.Eval(0, []byte("Signed-off-by"), []byte("A <a@x>")))
	require.False(t, f.Eval(0, []byte("Reviewed-by"), []byte("B <b@x>")))
}

func TestCELFilterValueContains(t *testing.T) {
	f, err := newCELFilter(`value.contains("@example.com")`)
	require.NoError(t, err)
	require.True(t, f.Eval(0, []byte("Signed-off-by"), []byte("A <a@example.com>")))
	require.False(t, f.Eval(0, []byte("Signed-off-by"), []byte("A <a@other.org>")))
}

func TestCELFilterIndex(t *testing.T) {
	f, err := newCELFilter("index >= 1")
	require.NoError(t, err)
	require.False(t, f.Eval(0, []byte("A"), []byte("1")))
	require.True(t, f.Eval(1, []byte("B"), []byte("2")))
}

func TestCELFilterNonBoolRejected(t *testing.T) {
	f, err := newCELFilter("key")
	require.NoError(t, err)
	require.False(t, f.Eval(0, []byte("A"), []byte("1")))
}

func TestCELFilterParseError(t *testing.T) {
	_, err := newCELFilter("key ==")
	require.Error(t, err)
}
