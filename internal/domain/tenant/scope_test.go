package tenant

import (
	"strings"
	"testing"

	"counterhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScope(t *testing.T) {
	s, err := NewScope(" 42 ", "hanuman-chalisa")
	require.NoError(t, err)
	assert.Equal(t, Scope{UserID: "42", AppID: "hanuman-chalisa"}, s)

	_, err = NewScope("", "ram-bank")
	assert.True(t, errors.Is(err, ErrEmptyScope))

	_, err = NewScope("42", "")
	assert.True(t, errors.Is(err, ErrEmptyScope))

	_, err = NewScope("42", "Ram Bank")
	assert.True(t, errors.Is(err, ErrInvalidAppID))
}

func TestNormalizeAppID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback string
		want     string
		wantErr  bool
	}{
		{name: "explicit", raw: "hanuman-chalisa", want: "hanuman-chalisa"},
		{name: "trimmed", raw: "  ram-bank ", want: "ram-bank"},
		{name: "configured fallback", raw: "", fallback: "om-japa", want: "om-japa"},
		{name: "baseline", raw: " ", want: DefaultAppID},
		{name: "uppercase rejected", raw: "RAM", wantErr: true},
		{name: "too long", raw: strings.Repeat("a", 65), wantErr: true},
		{name: "injection rejected", raw: `{"$ne":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAppID(tt.raw, tt.fallback)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAppID))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeFilter(t *testing.T) {
	got, err := NormalizeFilter("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = NormalizeFilter(" ram-bank")
	require.NoError(t, err)
	assert.Equal(t, "ram-bank", got)

	_, err = NormalizeFilter("a b")
	assert.Error(t, err)
}
