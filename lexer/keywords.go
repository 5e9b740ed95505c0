package lexer

var keywords = map[string]struct{}{
	"list":      {},
	"add":       {},
	"print":     {},
	"report":    {},
	"size":      {},
	"capacity":  {},
	"empty":     {},
	"search":    {},
	"searchall": {},
	"car":       {},
	"cdr":       {},
	"equals":    {},
	"delete":    {},
	"clear":     {},
	"grow":      {},
	"walk":      {},
	"try":       {},
}
