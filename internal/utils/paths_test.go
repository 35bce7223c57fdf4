package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("WIKITODO_TEST_DIR", "/srv/notes")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tilde only", in: "~", want: home},
		{name: "tilde prefix", in: "~/vimwiki", want: filepath.Join(home, "vimwiki")},
		{name: "env var", in: "$WIKITODO_TEST_DIR/wiki", want: "/srv/notes/wiki"},
		{name: "plain", in: "/tmp/wiki", want: "/tmp/wiki"},
		{name: "tilde user untouched", in: "~bob/wiki", want: "~bob/wiki"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPathWithin(t *testing.T) {
	assert.True(t, IsPathWithin("/a/b", "/a/b"))
	assert.True(t, IsPathWithin("/a/b", "/a/b/c/d.wiki"))
	assert.False(t, IsPathWithin("/a/b", "/a"))
	assert.False(t, IsPathWithin("/a/b", "/a/bc"))
	assert.False(t, IsPathWithin("/a/b", "/a/b/../c"))
}

func TestRelOrAbs(t *testing.T) {
	assert.Equal(t, "Projects.wiki", RelOrAbs("/wiki", "/wiki/Projects.wiki"))
	assert.Equal(t, filepath.Join("sub", "x.wiki"), RelOrAbs("/wiki", "/wiki/sub/x.wiki"))
	assert.Equal(t, "/elsewhere/x.wiki", RelOrAbs("/wiki", "/elsewhere/x.wiki"))
}
