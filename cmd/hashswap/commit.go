package main

import (
	"github.com/urfave/cli/v2"
)

var commit = cli.Command{
	Name:  "commit",
	Usage: "commit a swap and trigger the base-layer payout",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "swap_id",
			Usage:    "id of the swap to commit",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "claim_reference",
			Usage:    "reference of the off-chain claim",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "payout_address",
			Usage:    "base-layer address receiving the payout",
			Required: true,
		},
	},
	Action: commitAction,
}

func commitAction(ctx *cli.Context) error {
	resp, err := postJSON("/v1/swap/commit", map[string]interface{}{
		"swapId":         ctx.String("swap_id"),
		"claimReference": ctx.String("claim_reference"),
		"payoutAddress":  ctx.String("payout_address"),
	})
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
