package slug_test

import (
	"testing"

	"github.com/inklet/core/internal/pkg/slug"
	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"already_lower", "hello", "hello"},
		{"extra_whitespace", "  Hello   World  ", "hello-world"},
		{"underscores_and_slashes", "foo_bar/baz", "foo-bar-baz"},
		{"diacritics_stripped", "Café au Lait", "cafe-au-lait"},
		{"punctuation_dropped", "Hello, World! (2026)", "hello-world-2026"},
		{"cjk_preserved", "你好 世界", "你好-世界"},
		{"mixed_cjk_latin", "Go 语言入门", "go-语言入门"},
		{"collapse_hyphens", "a --- b", "a-b"},
		{"trim_hyphens", "-leading and trailing-", "leading-and-trailing"},
		{"numbers_kept", "Top 10 Tips", "top-10-tips"},
		{"all_symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.title))
		})
	}
}
