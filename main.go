package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/monkeyast/ast"
	"github.com/pontaoski/monkeyast/document"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func readProgram(c *cli.Context) (ast.Program, error) {
	file := c.Args().First()
	if file == "" {
		return ast.Program{}, tracerr.New("no document provided")
	}

	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = ioutil.ReadAll(c.App.Reader)
	} else {
		data, err = ioutil.ReadFile(file)
	}
	if err != nil {
		return ast.Program{}, tracerr.Wrap(err)
	}

	return document.Decode(data)
}

func render(w io.Writer, p ast.Program, block bool) {
	if block {
		fmt.Fprintln(w, ast.Block(p.Statements()))
		return
	}
	for _, stmt := range p.Statements() {
		fmt.Fprintln(w, stmt)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "monkeyast",
		Usage: "inspect and render syntax trees",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			logger := log.New(context.App.ErrWriter, "", 0)
			logger.Printf("error with monkeyast: %s", tracerr.SprintSourceColor(err))
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "print the canonical form of every statement in a document",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "block",
						Usage: "join statements on one line as a block would",
						Value: false,
					},
				},
				Action: func(c *cli.Context) error {
					p, err := readProgram(c)
					if err != nil {
						return err
					}
					render(c.App.Writer, p, c.Bool("block"))
					return nil
				},
			},
			{
				Name:      "dump",
				Usage:     "print the tree of a document",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					p, err := readProgram(c)
					if err != nil {
						return err
					}
					repr.New(c.App.Writer).Println(p.Statements())
					return nil
				},
			},
			{
				Name:      "encode",
				Usage:     "decode a document and write it back in normal form",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					p, err := readProgram(c)
					if err != nil {
						return err
					}
					out, err := document.Encode(p)
					if err != nil {
						return err
					}
					_, err = c.App.Writer.Write(out)
					return err
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
