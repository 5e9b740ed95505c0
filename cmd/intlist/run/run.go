package run

import (
	_ "embed"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/zegl/intlist/eval"
	"github.com/zegl/intlist/lexer"
	"github.com/zegl/intlist/parser"
)

// Extension of IntList script files
const Extension = ".il"

//go:embed demo.il
var demoScript string

type Config struct {
	Format eval.Format
	Debug  bool
}

// Run executes the script at path. If path is a directory every script in it
// is run in name order, each with its own set of lists.
func Run(path string, out io.Writer, cfg Config) error {
	f, err := os.Stat(path)
	if err != nil {
		return errors.WithStack(err)
	}

	if !f.IsDir() {
		return runFile(path, out, cfg)
	}

	files, err := ioutil.ReadDir(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	var scripts []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), Extension) {
			scripts = append(scripts, filepath.Join(path, file.Name()))
		}
	}
	sort.Strings(scripts)

	if len(scripts) == 0 {
		return errors.Errorf("no %s files in %s", Extension, path)
	}

	for _, script := range scripts {
		if err := runFile(script, out, cfg); err != nil {
			return err
		}
	}

	return nil
}

// Demo runs the built-in demonstration script.
func Demo(out io.Writer, cfg Config) error {
	return runScript("demo", demoScript, out, cfg)
}

func runFile(path string, out io.Writer, cfg Config) error {
	fileContents, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}

	return runScript(path, string(fileContents), out, cfg)
}

func runScript(name, src string, out io.Writer, cfg Config) error {
	jww.DEBUG.Printf("Running %s", name)

	// Run input through the lexer. A list of items is returned.
	lexed, err := lexer.Lex(src)
	if err != nil {
		return errors.Wrap(err, name)
	}

	if cfg.Debug {
		for _, item := range lexed {
			jww.INFO.Printf("%s %q (line %d)", item.Type, item.Val, item.Line)
		}
	}

	// Run lexed source through the parser. One node per statement is returned.
	parsed, err := parser.Parse(lexed)
	if err != nil {
		return errors.Wrap(err, name)
	}

	if cfg.Debug {
		jww.INFO.Println(parsed)
	}

	format := cfg.Format
	if format == "" {
		format = eval.FormatText
	}

	if err := eval.New(out, eval.WithFormat(format)).Run(parsed); err != nil {
		return errors.Wrap(err, name)
	}

	jww.DEBUG.Printf("Finished %s", name)
	return nil
}
