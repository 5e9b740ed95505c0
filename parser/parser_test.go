package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegl/intlist/lexer"
)

func TestList(t *testing.T) {
	input := []lexer.Item{
		{Type: lexer.KEYWORD, Val: "list", Line: 1},
		{Type: lexer.IDENTIFIER, Val: "a", Line: 1},
		{Type: lexer.NUMBER, Val: "4", Line: 1},
		{Type: lexer.EOL, Line: 1},
		{Type: lexer.EOF},
	}

	expected := FileNode{
		Instructions: []Node{
			StatementNode{
				Op:   OP_LIST,
				Args: []Node{NameNode{Name: "a"}, ConstantNode{Value: 4}},
				Line: 1,
			},
		},
	}

	res, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, expected, res)
}

func TestAddManyAndCdr(t *testing.T) {
	input := []lexer.Item{
		{Type: lexer.KEYWORD, Val: "add", Line: 1},
		{Type: lexer.IDENTIFIER, Val: "a", Line: 1},
		{Type: lexer.NUMBER, Val: "4", Line: 1},
		{Type: lexer.NUMBER, Val: "-3", Line: 1},
		{Type: lexer.EOL, Line: 1},
		{Type: lexer.KEYWORD, Val: "cdr", Line: 2},
		{Type: lexer.IDENTIFIER, Val: "b", Line: 2},
		{Type: lexer.IDENTIFIER, Val: "a", Line: 2},
		{Type: lexer.EOL, Line: 2},
		{Type: lexer.EOF},
	}

	expected := FileNode{
		Instructions: []Node{
			StatementNode{
				Op:   OP_ADD,
				Args: []Node{NameNode{Name: "a"}, ConstantNode{Value: 4}, ConstantNode{Value: -3}},
				Line: 1,
			},
			StatementNode{
				Op:   OP_CDR,
				Args: []Node{NameNode{Name: "b"}, NameNode{Name: "a"}},
				Line: 2,
			},
		},
	}

	res, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, expected, res)

	stmt := res.Instructions[0].(StatementNode)
	assert.Equal(t, []string{"a"}, stmt.Names())
	assert.Equal(t, []int{4, -3}, stmt.Numbers())
}

func TestTry(t *testing.T) {
	items, err := lexer.Lex("try list x -42")
	require.NoError(t, err)

	res, err := Parse(items)
	require.NoError(t, err)

	expected := FileNode{
		Instructions: []Node{
			TryNode{
				Statement: StatementNode{
					Op:   OP_LIST,
					Args: []Node{NameNode{Name: "x"}, ConstantNode{Value: -42}},
					Line: 1,
				},
			},
		},
	}
	assert.Equal(t, expected, res)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{name: "not a statement", src: "a 1", msg: "expected a statement"},
		{name: "missing name", src: "print", msg: "list name"},
		{name: "missing value", src: "add a", msg: "wrong number of values"},
		{name: "too many values", src: "search a 1 2 3", msg: "wrong number of values"},
		{name: "unexpected name", src: "equals a b c", msg: "unexpected \"c\""},
		{name: "try alone", src: "try", msg: "try without a statement"},
		{name: "nested try", src: "try try print a", msg: "is not a statement"},
		{name: "error on second line", src: "list a\nsize a 4", msg: "line 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := lexer.Lex(tc.src)
			require.NoError(t, err)

			_, err = Parse(items)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	res, err := Parse([]lexer.Item{{Type: lexer.EOF}})
	require.NoError(t, err)
	assert.Empty(t, res.Instructions)
}

func TestParseWithoutEOF(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := Parse([]lexer.Item{{Type: lexer.KEYWORD, Val: "print", Line: 1}})
		assert.Error(t, err)
	})

	assert.NotPanics(t, func() {
		_, err := Parse([]lexer.Item{{Type: lexer.KEYWORD, Val: "try", Line: 1}})
		assert.Error(t, err)
	})

	var res FileNode
	var err error
	assert.NotPanics(t, func() {
		res, err = Parse([]lexer.Item{
			{Type: lexer.KEYWORD, Val: "add", Line: 1},
			{Type: lexer.IDENTIFIER, Val: "a", Line: 1},
			{Type: lexer.NUMBER, Val: "7", Line: 1},
		})
	})
	require.NoError(t, err)

	expected := FileNode{
		Instructions: []Node{
			StatementNode{
				Op:   OP_ADD,
				Args: []Node{NameNode{Name: "a"}, ConstantNode{Value: 7}},
				Line: 1,
			},
		},
	}
	assert.Equal(t, expected, res)
}
