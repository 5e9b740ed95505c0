package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/zegl/intlist/cmd/intlist/run"
	"github.com/zegl/intlist/eval"
)

// Flag names, also readable from the environment as INTLIST_<NAME> with
// dashes replaced by underscores.
const (
	demoFlag     = "demo"
	formatFlag   = "format"
	debugFlag    = "debug"
	logLevelFlag = "log-level"
	logFlag      = "log"
)

func main() {
	flags := pflag.NewFlagSet("intlist", pflag.ContinueOnError)
	flags.Bool(demoFlag, false, "Run the built-in demonstration script")
	flags.String(formatFlag, string(eval.FormatText), "How print renders lists: text or json")
	flags.Bool(debugFlag, false, "Log lexed items and parsed statements")
	flags.Uint(logLevelFlag, 0, "Log verbosity: 0 info, 1 debug, 2 trace")
	flags.String(logFlag, "-", "Path to the log file, - for stdout")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] path/to/script.il|path/to/dir\n", os.Args[0])
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	v := viper.New()
	v.SetEnvPrefix("intlist")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	if err := initLog(v.GetUint(logLevelFlag), v.GetString(logFlag)); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	format, err := eval.ParseFormat(v.GetString(formatFlag))
	if err != nil {
		jww.ERROR.Println(err)
		os.Exit(1)
	}

	cfg := run.Config{
		Format: format,
		Debug:  v.GetBool(debugFlag),
	}

	if v.GetBool(demoFlag) {
		err = run.Demo(os.Stdout, cfg)
	} else {
		if flags.NArg() < 1 {
			flags.Usage()
			os.Exit(1)
		}
		err = run.Run(flags.Arg(0), os.Stdout, cfg)
	}

	if err != nil {
		jww.ERROR.Printf("%+v", err)
		os.Exit(1)
	}

	os.Exit(0)
}

func initLog(threshold uint, logPath string) error {
	if logPath != "-" && logPath != "" {
		// Use log file
		logOutput, err := os.OpenFile(logPath,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		// Disable stdout output
		jww.SetStdoutOutput(ioutil.Discard)
		jww.SetLogOutput(logOutput)
	} else {
		// Keep stdout for script output
		jww.SetStdoutOutput(os.Stderr)
	}

	if threshold > 1 {
		jww.SetStdoutThreshold(jww.LevelTrace)
		jww.SetLogThreshold(jww.LevelTrace)
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else if threshold == 1 {
		jww.SetStdoutThreshold(jww.LevelDebug)
		jww.SetLogThreshold(jww.LevelDebug)
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		jww.SetStdoutThreshold(jww.LevelInfo)
		jww.SetLogThreshold(jww.LevelInfo)
	}

	return nil
}
