// Package eval runs parsed IntList scripts. Each script works on its own set
// of named lists.
package eval

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/zegl/intlist/intlist"
	"github.com/zegl/intlist/parser"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name coming from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	}
	return "", errors.Errorf("unknown format %q, expected %q or %q", s, FormatText, FormatJSON)
}

type Evaluator struct {
	out    io.Writer
	format Format
	lists  map[string]*intlist.IntList
}

type Option func(*Evaluator)

// WithFormat selects how print renders a list.
func WithFormat(f Format) Option {
	return func(e *Evaluator) {
		e.format = f
	}
}

func New(out io.Writer, opts ...Option) *Evaluator {
	e := &Evaluator{
		out:    out,
		format: FormatText,
		lists:  make(map[string]*intlist.IntList),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// List returns the list bound to name.
func (e *Evaluator) List(name string) (*intlist.IntList, bool) {
	l, ok := e.lists[name]
	return l, ok
}

// Run executes every instruction of file in order and stops at the first
// error that is not inside a try.
func (e *Evaluator) Run(file parser.FileNode) error {
	for _, i := range file.Instructions {
		switch v := i.(type) {
		case parser.StatementNode:
			if err := e.exec(v); err != nil {
				return err
			}

		case parser.TryNode:
			if err := e.exec(v.Statement); err != nil {
				jww.DEBUG.Printf("try on line %d: %v", v.Statement.Line, err)
				e.printf("error: %v\n", err)
			}

		default:
			return errors.Errorf("unexpected node: %s", i)
		}
	}

	return nil
}

func (e *Evaluator) exec(stmt parser.StatementNode) error {
	jww.DEBUG.Printf("exec: %s", stmt)

	names := stmt.Names()
	nums := stmt.Numbers()

	// list is the only statement that may refer to a list that does not exist yet
	if stmt.Op == parser.OP_LIST {
		return e.newList(stmt, names[0], nums)
	}

	// cdr writes its first name, every other name is read
	readNames := names
	if stmt.Op == parser.OP_CDR {
		readNames = names[1:]
	}

	lists := make([]*intlist.IntList, 0, len(readNames))
	for _, name := range readNames {
		l, ok := e.lists[name]
		if !ok {
			return errors.Errorf("line %d: unknown list %q", stmt.Line, name)
		}
		lists = append(lists, l)
	}
	l := lists[0]

	switch stmt.Op {
	case parser.OP_ADD:
		for _, n := range nums {
			if l.Add(n) {
				e.printf("...%d added\n", n)
			} else {
				e.printf("...%d not added\n", n)
			}
		}

	case parser.OP_PRINT:
		return e.print(l)

	case parser.OP_REPORT:
		e.printf("%s: %s\nisEmpty() = %t; size() = %d; capacity() = %d\n",
			names[0], l, l.IsEmpty(), l.Size(), l.Capacity())

	case parser.OP_SIZE:
		e.printf("%d\n", l.Size())

	case parser.OP_CAPACITY:
		e.printf("%d\n", l.Capacity())

	case parser.OP_EMPTY:
		e.printf("%t\n", l.IsEmpty())

	case parser.OP_SEARCH:
		if len(nums) == 2 {
			e.printf("%d\n", l.SearchFrom(nums[0], nums[1]))
		} else {
			e.printf("%d\n", l.Search(nums[0]))
		}

	case parser.OP_SEARCHALL:
		e.searchAll(l, nums[0])

	case parser.OP_CAR:
		e.printf("%d\n", l.Car())

	case parser.OP_CDR:
		e.lists[names[0]] = l.Cdr()

	case parser.OP_EQUALS:
		e.printf("%s.equals%s = %t\n", l, lists[1], l.Equal(lists[1]))

	case parser.OP_DELETE:
		for _, n := range nums {
			if l.Delete(n) {
				e.printf("...%d deleted %s\n", n, l)
			} else {
				e.printf("...%d not found %s\n", n, l)
			}
		}

	case parser.OP_CLEAR:
		l.Clear()

	case parser.OP_GROW:
		l.Grow()

	case parser.OP_WALK:
		for z := l; z.Car() != intlist.Nil; {
			e.printf("car%s = %d\n", z, z.Car())
			rest := z.Cdr()
			e.printf("cdr%s = %s\n", z, rest)
			z = rest
		}

	default:
		return errors.Errorf("line %d: unsupported statement %s", stmt.Line, stmt.Op)
	}

	return nil
}

func (e *Evaluator) newList(stmt parser.StatementNode, name string, nums []int) error {
	if len(nums) == 0 {
		e.lists[name] = intlist.New()
		return nil
	}

	l, err := intlist.NewWithCapacity(nums[0])
	if err != nil {
		return errors.Wrapf(err, "line %d", stmt.Line)
	}
	e.lists[name] = l
	return nil
}

// searchAll enumerates the occurrences of x by resuming the search one past
// the previous hit, stopping at the list size.
func (e *Evaluator) searchAll(l *intlist.IntList, x int) {
	index := l.Search(x)
	if index == intlist.Nil {
		e.printf("search(%d) not found\n", x)
		return
	}

	found := []string{fmt.Sprintf("%d", index)}
	for j := index + 1; j < l.Size(); j = index + 1 {
		index = l.SearchFrom(x, j)
		if index == intlist.Nil {
			break
		}
		found = append(found, fmt.Sprintf("%d", index))
	}

	e.printf("search(%d) found at index %s\n", x, strings.Join(found, "..."))
}

func (e *Evaluator) print(l *intlist.IntList) error {
	if e.format == FormatJSON {
		b, err := l.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "rendering list")
		}
		e.printf("%s\n", b)
		return nil
	}

	e.printf("%s\n", l)
	return nil
}

func (e *Evaluator) printf(format string, a ...interface{}) {
	fmt.Fprintf(e.out, format, a...)
}
