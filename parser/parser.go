package parser

import (
	"strconv"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/zegl/intlist/lexer"
)

type parser struct {
	i     int
	input []lexer.Item
}

// Parse turns the items of one script into a FileNode with one instruction
// per line.
func Parse(input []lexer.Item) (FileNode, error) {
	p := &parser{
		i:     0,
		input: input,
	}

	var instructions []Node

	for p.peek().Type != lexer.EOF {
		node, err := p.parseLine()
		if err != nil {
			return FileNode{}, err
		}

		jww.TRACE.Printf("parsed: %s", node)
		instructions = append(instructions, node)
	}

	return FileNode{
		Instructions: instructions,
	}, nil
}

// peek returns the current item, or EOF once the input runs out.
func (p *parser) peek() lexer.Item {
	if p.i < len(p.input) {
		return p.input[p.i]
	}
	return lexer.Item{Type: lexer.EOF}
}

func (p *parser) parseLine() (Node, error) {
	current := p.peek()

	if current.Type == lexer.KEYWORD && current.Val == "try" {
		p.i++
		if p.peek().Type == lexer.EOL {
			return nil, errors.Errorf("line %d: try without a statement", current.Line)
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return TryNode{Statement: stmt}, nil
	}

	return p.parseStatement()
}

func (p *parser) parseStatement() (StatementNode, error) {
	current := p.peek()

	if current.Type != lexer.KEYWORD {
		return StatementNode{}, errors.Errorf("line %d: expected a statement, got %q", current.Line, current.Val)
	}

	op := Op(current.Val)
	sig, ok := signatures[op]
	if !ok {
		return StatementNode{}, errors.Errorf("line %d: %q is not a statement", current.Line, current.Val)
	}

	stmt := StatementNode{Op: op, Line: current.Line}
	p.i++

	// Names first
	for n := 0; n < sig.names; n++ {
		item := p.peek()
		if item.Type != lexer.IDENTIFIER {
			return StatementNode{}, errors.Errorf("line %d: %s expects %d list name(s)", current.Line, op, sig.names)
		}
		stmt.Args = append(stmt.Args, NameNode{Name: item.Val})
		p.i++
	}

	// Then numbers, until the end of the line
	nums := 0
	for p.peek().Type != lexer.EOL && p.peek().Type != lexer.EOF {
		item := p.peek()
		if item.Type != lexer.NUMBER {
			return StatementNode{}, errors.Errorf("line %d: unexpected %q in %s", current.Line, item.Val, op)
		}

		val, err := strconv.ParseInt(item.Val, 10, 64)
		if err != nil {
			return StatementNode{}, errors.Wrapf(err, "line %d", current.Line)
		}

		stmt.Args = append(stmt.Args, ConstantNode{Value: val})
		nums++
		p.i++
	}

	if !sig.acceptsNums(nums) {
		return StatementNode{}, errors.Errorf("line %d: wrong number of values for %s: %d", current.Line, op, nums)
	}

	// Consume EOL
	if p.peek().Type == lexer.EOL {
		p.i++
	}

	return stmt, nil
}
