package application

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// maxSatoshis is the total supply of the base layer in satoshis.
const maxSatoshis = 2099999997690000

func validateAmount(satoshis uint64) error {
	if satoshis == 0 || satoshis > maxSatoshis {
		return ErrInvalidAmount
	}
	return nil
}

func validateAddress(address string, net *chaincfg.Params) error {
	addr, err := btcutil.DecodeAddress(address, net)
	if err != nil {
		return ErrInvalidAddress
	}
	if !addr.IsForNet(net) {
		return ErrInvalidAddress
	}
	return nil
}
