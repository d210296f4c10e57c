// Command gone6502 loads a 6502 program file from disk and either runs it
// to completion or steps through it in an interactive debugger. The core
// always places the program at the fixed PRG-ROM address 0x8000 (spec.md
// §4.2); this host never touches CPU internals beyond Load/Reset/Run/
// LoadAndRun/Debug.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"github.com/hejops/gone6502/cpu"
)

func main() {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "program",
				Aliases: []string{"p"},
				Usage:   "path to a program file: a whitespace-separated hex dump (e.g. \"a9 05 00\") or a raw binary blob",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "step through the program in an interactive TUI instead of running to completion",
			},
		},
		Name:    "gone6502",
		Usage:   "Run a 6502 program against a flat 64 KiB memory bus",
		Version: "v0.0.1",
		Action: func(c *cli.Context) error {
			path := c.String("program")
			if path == "" {
				cli.ShowAppHelp(c)
				return cli.Exit("", 86)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("reading program file: %v", err), 1)
			}
			program := parseProgram(raw)

			C := cpu.New()

			if c.Bool("debug") {
				C.Debug(program)
				return nil
			}

			if err := C.LoadAndRun(program); err != nil {
				return cli.Exit(fmt.Sprintf("run failed: %v", err), 1)
			}
			fmt.Printf("A=%#02x X=%#02x Y=%#02x PC=%#04x P=%#08b\n", C.A, C.X, C.Y, C.PC, C.P)
			return nil
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	app.Run(os.Args)
}

// parseProgram interprets raw as a whitespace-separated hex dump (the
// teacher's LoadProgram convention) when every non-whitespace byte is a hex
// digit and there is an even number of them; otherwise raw is treated as a
// raw binary program blob.
func parseProgram(raw []byte) []byte {
	stripped := bytes.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			return -1
		}
		return r
	}, raw)

	if program, err := hex.DecodeString(string(stripped)); err == nil {
		return program
	}
	return raw
}
