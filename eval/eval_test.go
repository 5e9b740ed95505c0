package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegl/intlist/intlist"
	"github.com/zegl/intlist/lexer"
	"github.com/zegl/intlist/parser"
)

func run(t *testing.T, src string, opts ...Option) (*Evaluator, string, error) {
	items, err := lexer.Lex(src)
	require.NoError(t, err)

	parsed, err := parser.Parse(items)
	require.NoError(t, err)

	var out bytes.Buffer
	e := New(&out, opts...)
	err = e.Run(parsed)
	return e, out.String(), err
}

func TestRunBindsLists(t *testing.T) {
	e, out, err := run(t, "list a 2\nadd a 1 2 3\ncdr b a")
	require.NoError(t, err)
	assert.Equal(t, "...1 added\n...2 added\n...3 added\n", out)

	a, ok := e.List("a")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, a.Values())
	assert.Equal(t, 4, a.Capacity())

	b, ok := e.List("b")
	require.True(t, ok)
	assert.True(t, b.Equal(intlist.FromValues(2, 3)))

	_, ok = e.List("c")
	assert.False(t, ok)
}

func TestRunStopsAtFirstError(t *testing.T) {
	_, out, err := run(t, "list a\nadd a 1\nlist b -42\nadd a 2")
	require.Error(t, err)
	assert.ErrorIs(t, err, intlist.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, "...1 added\n", out)
}

func TestRunUnknownList(t *testing.T) {
	_, _, err := run(t, "print nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown list "nope"`)

	_, _, err = run(t, "list a\nequals a nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown list "nope"`)
}

func TestTryContinues(t *testing.T) {
	e, out, err := run(t, "try list a -1\ntry add a 1\nlist a 1\nadd a 1")
	require.NoError(t, err)
	assert.Equal(t,
		"error: line 1: capacity must be >= 0, got -1: invalid argument\n"+
			"error: line 2: unknown list \"a\"\n"+
			"...1 added\n", out)

	a, ok := e.List("a")
	require.True(t, ok)
	assert.Equal(t, 1, a.Size())
}

func TestTryCapacityTooLarge(t *testing.T) {
	var out string
	var err error
	assert.NotPanics(t, func() {
		_, out, err = run(t, "try list a 9223372036854775807\ntry print a")
	})
	require.NoError(t, err)
	assert.Equal(t,
		"error: line 1: capacity must be <= 2147483647, got 9223372036854775807: invalid argument\n"+
			"error: line 2: unknown list \"a\"\n", out)

	_, _, err = run(t, "list a 9223372036854775807")
	assert.ErrorIs(t, err, intlist.ErrInvalidArgument)
}

func TestPrintJSON(t *testing.T) {
	_, out, err := run(t, "list a 2\nadd a 4 -3 0 9\nprint a", WithFormat(FormatJSON))
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 5)
	assert.JSONEq(t, `{"size":3,"capacity":4,"values":[4,0,9]}`, string(lines[4]))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestRunUnexpectedNode(t *testing.T) {
	err := New(&bytes.Buffer{}).Run(parser.FileNode{
		Instructions: []parser.Node{parser.NameNode{Name: "a"}},
	})
	assert.Error(t, err)
}
