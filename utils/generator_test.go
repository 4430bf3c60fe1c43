package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortID(t *testing.T) {
	id := ShortID(6)
	require.Len(t, id, 6)
	for _, r := range id {
		require.True(t, r >= '0' && r <= '9', "short ids are numeric, got %q", id)
	}
}

func TestSlugify(t *testing.T) {
	slug := Slugify("Go From Scratch: A Beginner's Guide!")
	require.True(t, strings.HasPrefix(slug, "go-from-scratch-a-beginner-s-guide-"), "slug = %q", slug)
	require.Len(t, slug, len("go-from-scratch-a-beginner-s-guide-")+5)
}

func TestSlugifyEmptyTitle(t *testing.T) {
	slug := Slugify("!!!")
	require.Len(t, slug, 5)
	require.NotContains(t, slug, "-")
}
