package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/showcase/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  []slug.Option
		want  string
	}{
		{"product name", "Rainbow Sunset Painting", nil, "rainbow-sunset-painting"},
		{"collapses punctuation", "  Ocean -- Waves!! ", nil, "ocean-waves"},
		{"folds diacritics", "Crème Brûlée à Paris", nil, "creme-brulee-a-paris"},
		{"keeps digits", "Study No. 5", nil, "study-no-5"},
		{"lowercases", "GOLDEN Fields", nil, "golden-fields"},
		{"empty input", "", nil, ""},
		{"only symbols", "!!!", nil, ""},
		{"max length", "Mountain Majesty", []slug.Option{slug.MaxLength(8)}, "mountain"},
		{"max length trims dangling separator", "Mountain Majesty", []slug.Option{slug.MaxLength(9)}, "mountain"},
		{
			"custom replacements",
			"Salt & Pepper",
			[]slug.Option{slug.CustomReplace(map[string]string{"&": "and"})},
			"salt-and-pepper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestMakeIsStable(t *testing.T) {
	t.Parallel()

	first := slug.Make("Forest Dreams")
	assert.Equal(t, first, slug.Make("Forest Dreams"))
	assert.Equal(t, first, slug.Make(first))
}
