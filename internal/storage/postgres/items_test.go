package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text",
			in:   "drill",
			want: "drill",
		},
		{
			name: "percent is literal",
			in:   "100%",
			want: `100\%`,
		},
		{
			name: "underscore is literal",
			in:   "a_b",
			want: `a\_b`,
		},
		{
			name: "backslash is literal",
			in:   `a\b`,
			want: `a\\b`,
		},
		{
			name: "only metacharacters",
			in:   `%_\`,
			want: `\%\_\\`,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, escapeLike(tc.in))
		})
	}
}
