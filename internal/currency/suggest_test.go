package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestRanksByEditDistance(t *testing.T) {
	got := Suggest(sample(), "pund", 2)
	require.NotEmpty(t, got)
	require.Equal(t, "GBP", got[0].Code)
}

func TestSuggestTiesBreakByCode(t *testing.T) {
	got := Suggest(sample(), "Dollar", 1)
	require.Equal(t, []string{"AUD"}, Codes(got))
}

func TestSuggestDropsDistantNames(t *testing.T) {
	require.Empty(t, Suggest(sample(), "qq", 3))
	require.Empty(t, Suggest(sample(), "   ", 3))
	require.Empty(t, Suggest(nil, "euro", 3))
	require.Empty(t, Suggest(sample(), "euro", 0))
}
