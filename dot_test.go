package treego_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/treego"
)

func TestWriteDot(t *testing.T) {
	tree := treego.New[string]()

	root, _ := tree.InsertRoot("root")
	a, _ := tree.Insert("a", root)
	_, _ = tree.Insert("b", root)
	_, _ = tree.Insert("c", a)

	var sb strings.Builder
	require.NoError(t, tree.WriteDot(&sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "strict digraph {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))

	// One DOT node per live tree node, labeled with its payload.
	for _, label := range []string{"root", "a", "b", "c"} {
		assert.Contains(t, out, `label="`+label+`\n`)
	}

	// Three parent→child edges.
	assert.Equal(t, 3, strings.Count(out, "->"))
}

func TestWriteDotIncludesDetachedComponents(t *testing.T) {
	tree := treego.New[string]()

	_, _ = tree.InsertRoot("root")
	floating, err := tree.Insert("floating", treego.NilHandle)
	require.NoError(t, err)
	_, _ = tree.Insert("child", floating)

	var sb strings.Builder
	require.NoError(t, tree.WriteDot(&sb))
	out := sb.String()

	assert.Contains(t, out, `label="floating\n`)
	assert.Contains(t, out, `label="child\n`)
	assert.Equal(t, 1, strings.Count(out, "->"))
}

func TestFprint(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	tree := treego.New[string]()

	root, _ := tree.InsertRoot("fs")
	etc, _ := tree.Insert("etc", root)
	_, _ = tree.Insert("hosts", etc)
	_, _ = tree.Insert("var", root)

	var sb strings.Builder
	require.NoError(t, tree.Fprint(&sb))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "fs"))
	assert.True(t, strings.HasPrefix(lines[1], "    etc"))
	assert.True(t, strings.HasPrefix(lines[2], "        hosts"))
	assert.True(t, strings.HasPrefix(lines[3], "    var"))

	// Every line carries the node's handle for cross-referencing.
	for _, line := range lines {
		assert.Contains(t, line, "Index(slot=")
	}
}
