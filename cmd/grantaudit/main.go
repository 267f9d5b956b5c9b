package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "grantaudit"
	app.Usage = "Deploy and operate grant audit contracts"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Path to YAML configuration file",
			Value: "grantaudit.yml",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "deploy",
			Usage:  "Deploy contracts read from the configured directory",
			Action: withEnv(deployAction),
		},
		{
			Name:  "bounty",
			Usage: "Print audit bounty and votes of its auditors",
			Flags: []cli.Flag{
				cli.Int64Flag{Name: "id", Usage: "Bounty identifier"},
			},
			Action: withEnv(bountyAction),
		},
		{
			Name:  "escrow",
			Usage: "List milestone escrows",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "batch", Usage: "Number of escrows fetched per request", Value: 100},
				cli.BoolFlag{Name: "active", Usage: "Show only milestones accepting deposits"},
			},
			Action: withEnv(escrowAction),
		},
		{
			Name:  "vote",
			Usage: "Submit auditor vote signed by the configured wallet account",
			Flags: []cli.Flag{
				cli.Int64Flag{Name: "id", Usage: "Bounty identifier"},
				cli.StringFlag{Name: "vote", Usage: "Vote, 'pass' or 'fail'"},
				cli.StringFlag{Name: "report", Usage: "Audit report"},
				cli.StringSliceFlag{Name: "evidence", Usage: "CIDv0 of the evidence document, can be repeated"},
			},
			Action: withEnv(voteAction),
		},
	}
	return app
}
