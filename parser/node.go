package parser

import (
	"fmt"
	"strings"
)

// Node is the base node. A node is something the evaluator can act on
type Node interface {
	Node()
	String() string
}

// baseNode implements the Node interface, to reduce code duplication
type baseNode struct{}

func (n baseNode) Node() {

}

// FileNode is a list of other nodes
// Indicates the root of one script file
type FileNode struct {
	baseNode

	Instructions []Node
}

func (fn FileNode) String() string {
	var res []string

	for _, i := range fn.Instructions {
		res = append(res, fmt.Sprintf("%+v", i))
	}

	return fmt.Sprintf("FileNode: \n\t%s", strings.Join(res, "\n\t"))
}

// Op is the operation a statement performs, it is the keyword that starts the line
type Op string

const (
	OP_LIST      Op = "list"
	OP_ADD       Op = "add"
	OP_PRINT     Op = "print"
	OP_REPORT    Op = "report"
	OP_SIZE      Op = "size"
	OP_CAPACITY  Op = "capacity"
	OP_EMPTY     Op = "empty"
	OP_SEARCH    Op = "search"
	OP_SEARCHALL Op = "searchall"
	OP_CAR       Op = "car"
	OP_CDR       Op = "cdr"
	OP_EQUALS    Op = "equals"
	OP_DELETE    Op = "delete"
	OP_CLEAR     Op = "clear"
	OP_GROW      Op = "grow"
	OP_WALK      Op = "walk"
)

// StatementNode is one line of a script. Args holds NameNodes followed by
// ConstantNodes.
type StatementNode struct {
	baseNode

	Op   Op
	Args []Node
	Line int
}

func (sn StatementNode) String() string {
	var args []string
	for _, a := range sn.Args {
		args = append(args, a.String())
	}
	return fmt.Sprintf("StatementNode(%d): %s %s", sn.Line, sn.Op, strings.Join(args, " "))
}

// Names returns the list names the statement refers to, in order
func (sn StatementNode) Names() []string {
	var res []string
	for _, a := range sn.Args {
		if n, ok := a.(NameNode); ok {
			res = append(res, n.Name)
		}
	}
	return res
}

// Numbers returns the numeric arguments of the statement, in order
func (sn StatementNode) Numbers() []int {
	var res []int
	for _, a := range sn.Args {
		if c, ok := a.(ConstantNode); ok {
			res = append(res, int(c.Value))
		}
	}
	return res
}

// TryNode runs Statement and reports its error instead of stopping the script
type TryNode struct {
	baseNode

	Statement StatementNode
}

func (tn TryNode) String() string {
	return "try " + tn.Statement.String()
}

// NameNode refers to a list by name
type NameNode struct {
	baseNode

	Name string
}

func (nn NameNode) String() string {
	return nn.Name
}

// ConstantNode is a number
type ConstantNode struct {
	baseNode

	Value int64
}

func (cn ConstantNode) String() string {
	return fmt.Sprintf("%d", cn.Value)
}
