package slugx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Álex's Workspace", "alexs-workspace"},
		{"Jane's Workspace", "janes-workspace"},
		{"  Lots   of Spaces  ", "lots-of-spaces"},
		{"snake_case_name", "snake-case-name"},
		{"Already-Hyphenated--Name", "already-hyphenated-name"},
		{"Ünïcödé Tëst", "unicode-test"},
		{"123 Numbers First", "123-numbers-first"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
