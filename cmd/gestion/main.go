// gestion opera el gateway desde la terminal: carga el espejo de datos y
// ejecuta una mutación por invocación.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.ColoredUi{
		ErrorColor: cli.UiColorRed,
		WarnColor:  cli.UiColorYellow,
		Ui: &cli.BasicUi{
			Reader:      bufio.NewReader(os.Stdin),
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
	}

	c := &cli.CLI{
		Name:       "gestion",
		Version:    version,
		Args:       args,
		Commands:   commands(&Meta{Ui: ui, Open: openFromEnv}),
		HelpFunc:   cli.BasicHelpFunc("gestion"),
		HelpWriter: os.Stderr,
	}

	code, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
		return 1
	}
	return code
}

func commands(m *Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"summary": func() (cli.Command, error) {
			return &SummaryCommand{Meta: m}, nil
		},
		"clients add": func() (cli.Command, error) {
			return &ClientsAddCommand{Meta: m}, nil
		},
		"clients delete": func() (cli.Command, error) {
			return &ClientsDeleteCommand{Meta: m}, nil
		},
		"charges pay": func() (cli.Command, error) {
			return &ChargesPayCommand{Meta: m}, nil
		},
		"charges receipt": func() (cli.Command, error) {
			return &ChargesReceiptCommand{Meta: m}, nil
		},
		"reminders send": func() (cli.Command, error) {
			return &RemindersSendCommand{Meta: m}, nil
		},
	}
}
