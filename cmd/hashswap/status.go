package main

import (
	"github.com/urfave/cli/v2"
)

var status = cli.Command{
	Name:  "status",
	Usage: "show the status of a swap",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "swap_id",
			Usage:    "id of the swap",
			Required: true,
		},
	},
	Action: statusAction,
}

func statusAction(ctx *cli.Context) error {
	resp, err := getJSON("/v1/swap/" + ctx.String("swap_id"))
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
