package parser

// signature is the shape of the arguments a statement takes: a fixed number
// of list names followed by between minNums and maxNums numbers. maxNums -1
// means unbounded.
type signature struct {
	names   int
	minNums int
	maxNums int
}

var signatures = map[Op]signature{
	OP_LIST:      {names: 1, minNums: 0, maxNums: 1},
	OP_ADD:       {names: 1, minNums: 1, maxNums: -1},
	OP_PRINT:     {names: 1},
	OP_REPORT:    {names: 1},
	OP_SIZE:      {names: 1},
	OP_CAPACITY:  {names: 1},
	OP_EMPTY:     {names: 1},
	OP_SEARCH:    {names: 1, minNums: 1, maxNums: 2},
	OP_SEARCHALL: {names: 1, minNums: 1, maxNums: 1},
	OP_CAR:       {names: 1},
	OP_CDR:       {names: 2},
	OP_EQUALS:    {names: 2},
	OP_DELETE:    {names: 1, minNums: 1, maxNums: -1},
	OP_CLEAR:     {names: 1},
	OP_GROW:      {names: 1},
	OP_WALK:      {names: 1},
}

func (s signature) acceptsNums(n int) bool {
	if n < s.minNums {
		return false
	}
	return s.maxNums == -1 || n <= s.maxNums
}
