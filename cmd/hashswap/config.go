package main

import (
	"github.com/urfave/cli/v2"
)

var cliConfig = cli.Command{
	Name:  "config",
	Usage: "print or initialize the CLI state",
	Action: func(ctx *cli.Context) error {
		state, err := getState()
		if err != nil {
			return err
		}
		printRespJSON(state)
		return nil
	},
	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "set the url of the hashswapd daemon to connect to",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "daemon_url",
					Usage: "base url of the daemon's http interface",
					Value: "http://localhost:9945",
				},
			},
			Action: func(ctx *cli.Context) error {
				return setState(map[string]string{
					"daemon_url": ctx.String("daemon_url"),
				})
			},
		},
	},
}
