// Command leaguectl imports and exports league data, renders the averages chart and
// prints league records from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	a := cli.NewApp()
	a.Name = "leaguectl"
	a.Usage = "Manage and inspect fantasy league history data"
	a.Commands = []*cli.Command{
		importCommand(),
		exportCommand(),
		chartCommand(),
		hallOfFameCommand(),
		hashPasswordCommand(),
	}
	return a
}
