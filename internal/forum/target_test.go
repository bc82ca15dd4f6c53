package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetKind(t *testing.T) {
	tests := []struct {
		input string
		want  TargetKind
		ok    bool
	}{
		{"question", KindQuestion, true},
		{"answer", KindAnswer, true},
		{"tag", "", false},
		{"", "", false},
		{"Question", "", false}, // kinds are case-sensitive
	}

	for _, tt := range tests {
		t.Run("kind "+tt.input, func(t *testing.T) {
			kind, err := ParseTargetKind(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, kind)
			} else {
				assert.ErrorIs(t, err, ErrInvalidKind)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, OrderRecency, order)

	order, err = ParseOrder("popularity")
	require.NoError(t, err)
	assert.Equal(t, OrderPopularity, order)

	_, err = ParseOrder("hotness")
	assert.Error(t, err)
}
