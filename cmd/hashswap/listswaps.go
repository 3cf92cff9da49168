package main

import (
	"github.com/urfave/cli/v2"
)

var listswaps = cli.Command{
	Name:   "listswaps",
	Usage:  "list all swaps known to the daemon",
	Action: listSwapsAction,
}

func listSwapsAction(ctx *cli.Context) error {
	resp, err := getJSON("/v1/swaps")
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
