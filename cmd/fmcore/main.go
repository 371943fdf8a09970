package main

import (
	"fmt"
	"os"

	"github.com/codegangsta/cli"
	"github.com/inconshreveable/log15"
	"github.com/ugorji/go/codec"

	"github.com/moonad/formality-core/check"
	"github.com/moonad/formality-core/compile"
)

var log = log15.New("module", "fmcore")

func main() {
	log.SetHandler(log15.DiscardHandler())

	app := cli.NewApp()
	app.Name = "fmcore"
	app.Usage = "Check a Formality-Core module"
	app.ArgsUsage = "<file.fm>"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "Trace reduction and equality to stderr",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "Emit machine-readable results on stdout (json format)",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.NewExitError("usage: fmcore <file.fm>", 2)
		}
		if ctx.Bool("debug") {
			log.SetHandler(log15.StderrHandler)
			check.EnableDebug()
		}

		unit := compile.NewCheckUnit()
		if err := unit.AddFile(ctx.Args().First()); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		log.Debug("module loaded", "defs", len(unit.Module.Names), "hash", unit.Module.Hash())

		failures := unit.Check()

		if ctx.Bool("json") {
			emitJSON(unit, failures)
		} else {
			for _, f := range failures {
				fmt.Printf("Checking: %v\n%v\n", f.Name, f.Err)
			}
			if len(failures) == 0 {
				fmt.Println("All terms check.")
			}
		}

		if len(failures) > 0 {
			return cli.NewExitError("", 1)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

type defReport struct {
	Name  string `json:"name"`
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func emitJSON(unit *compile.CheckUnit, failures []compile.Failure) {
	failed := make(map[string]string, len(failures))
	for _, f := range failures {
		failed[f.Name.String()] = f.Err.Error()
	}
	reports := make([]defReport, 0, len(unit.Module.Names))
	for _, name := range unit.Module.Names {
		msg, bad := failed[name.String()]
		reports = append(reports, defReport{
			Name:  name.String(),
			Ok:    !bad,
			Error: msg,
		})
	}
	err := codec.NewEncoder(os.Stdout, &codec.JsonHandle{}).Encode(reports)
	if err != nil {
		panic(err)
	}
	os.Stdout.Write([]byte{'\n'})
}
