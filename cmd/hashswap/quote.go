package main

import (
	"github.com/urfave/cli/v2"
)

var quote = cli.Command{
	Name:  "quote",
	Usage: "request a new swap quote for an amount of satoshis",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "amount of the swap in satoshis",
			Required: true,
		},
	},
	Action: quoteAction,
}

func quoteAction(ctx *cli.Context) error {
	resp, err := postJSON("/v1/swap/quote", map[string]interface{}{
		"amount": ctx.Uint64("amount"),
	})
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
