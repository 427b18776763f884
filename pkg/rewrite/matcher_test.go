// pkg/rewrite/matcher_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test boundary-aware path replacement

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceAll_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		old       string
		new       string
		want      string
		wantCount int
	}{
		{
			name:      "plain occurrence",
			content:   `<img src="img.png">`,
			old:       "img.png",
			new:       "img.webp",
			want:      `<img src="img.webp">`,
			wantCount: 1,
		},
		{
			name:      "start of content",
			content:   "img.png is the logo",
			old:       "img.png",
			new:       "img.webp",
			want:      "img.webp is the logo",
			wantCount: 1,
		},
		{
			name:      "longer filename is not touched",
			content:   `url(bigimg.png)`,
			old:       "img.png",
			new:       "img.webp",
			want:      `url(bigimg.png)`,
			wantCount: 0,
		},
		{
			name:      "longer path is not touched",
			content:   `src="other/img.png"`,
			old:       "img.png",
			new:       "img.webp",
			want:      `src="other/img.png"`,
			wantCount: 0,
		},
		{
			name:      "hyphen prefix is not touched",
			content:   "hero-img.png",
			old:       "img.png",
			new:       "img.webp",
			want:      "hero-img.png",
			wantCount: 0,
		},
		{
			name:      "dot prefix is not touched",
			content:   "some.img.png",
			old:       "img.png",
			new:       "img.webp",
			want:      "some.img.png",
			wantCount: 0,
		},
		{
			name:      "root-anchored reference matches",
			content:   `src="/img.png"`,
			old:       "img.png",
			new:       "img.webp",
			want:      `src="/img.webp"`,
			wantCount: 1,
		},
		{
			name:      "parenthesis then slash matches",
			content:   `url(/img.png)`,
			old:       "img.png",
			new:       "img.webp",
			want:      `url(/img.webp)`,
			wantCount: 1,
		},
		{
			name:      "multi-segment old path",
			content:   `import logo from "assets/icons/logo.png";`,
			old:       "assets/icons/logo.png",
			new:       "assets/icons/logo.webp",
			want:      `import logo from "assets/icons/logo.webp";`,
			wantCount: 1,
		},
		{
			name:      "multiple occurrences",
			content:   "a img.png b img.png c",
			old:       "img.png",
			new:       "img.webp",
			want:      "a img.webp b img.webp c",
			wantCount: 2,
		},
		{
			name:      "regex metacharacters in old path stay literal",
			content:   "pic (1).png here",
			old:       "pic (1).png",
			new:       "pic (1).webp",
			want:      "pic (1).webp here",
			wantCount: 1,
		},
		{
			name:      "dollar sign in new path stays literal",
			content:   `"img.png"`,
			old:       "img.png",
			new:       "$1/img.webp",
			want:      `"$1/img.webp"`,
			wantCount: 1,
		},
		{
			name:      "no occurrence",
			content:   "nothing to see",
			old:       "img.png",
			new:       "img.webp",
			want:      "nothing to see",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := ReplaceAll(tt.content, tt.old, tt.new)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestPattern_PreservesPrefix(t *testing.T) {
	// The captured prefix must be re-emitted untouched for every
	// allowed boundary character.
	for _, prefix := range []string{"", " ", `"`, "'", "(", "=", "\n", "/", " /"} {
		content := prefix + "img.png"
		got, count := ReplaceAll(content, "img.png", "img.webp")
		assert.Equal(t, prefix+"img.webp", got, "prefix %q", prefix)
		assert.Equal(t, 1, count, "prefix %q", prefix)
	}
}
