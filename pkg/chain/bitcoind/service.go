package bitcoind

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
	"github.com/sony/gobreaker"

	"github.com/hashswap-network/hashswapd/pkg/chain"
	"github.com/hashswap-network/hashswapd/pkg/circuitbreaker"
)

type service struct {
	client *rpcclient.Client
	net    *chaincfg.Params
	cb     *gobreaker.CircuitBreaker
}

// ServiceOpts holds the info needed to connect to a bitcoind-like JSON-RPC
// node.
type ServiceOpts struct {
	RPCAddress string
	RPCUser    string
	RPCPass    string
	DisableTLS bool
	Network    *chaincfg.Params
}

func (o ServiceOpts) validate() error {
	if o.RPCAddress == "" {
		return fmt.Errorf("missing rpc address")
	}
	if o.Network == nil {
		return fmt.Errorf("missing network params")
	}
	return nil
}

// NewService returns a new bitcoind service as a chain.Service interface.
// The connection is checked by querying the chain info upfront. All calls go
// through a circuit breaker so that a flapping peer is detected early.
func NewService(opts ServiceOpts) (chain.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid peer opts: %w", err)
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         opts.RPCAddress,
		User:         opts.RPCUser,
		Pass:         opts.RPCPass,
		HTTPPostMode: true,
		DisableTLS:   opts.DisableTLS,
	}, nil)
	if err != nil {
		return nil, err
	}

	svc := &service{
		client: client,
		net:    opts.Network,
		cb:     circuitbreaker.NewCircuitBreaker("base-layer peer"),
	}

	if err := svc.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return svc, nil
}

func (s *service) healthCheck() error {
	info, err := s.GetChainInfo()
	if err != nil {
		return err
	}
	if expected := chainName(s.net); info.Network != expected {
		return fmt.Errorf(
			"peer is on network %s, expected %s", info.Network, expected,
		)
	}
	return nil
}

// chainName maps chaincfg params to the chain name advertised by bitcoind in
// getblockchaininfo responses.
func chainName(params *chaincfg.Params) string {
	switch params.Net {
	case wire.MainNet:
		return "main"
	case wire.TestNet3:
		return "test"
	case wire.TestNet:
		return "regtest"
	default:
		return params.Name
	}
}

func (s *service) GetBalance() (btcutil.Amount, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.GetBalance("*")
	})
	if err != nil {
		return 0, err
	}
	return res.(btcutil.Amount), nil
}

func (s *service) GetNewAddress() (string, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.GetNewAddress("")
	})
	if err != nil {
		return "", err
	}
	return res.(btcutil.Address).EncodeAddress(), nil
}

func (s *service) GenerateToAddress(
	numBlocks int64, address string,
) ([]string, error) {
	addr, err := btcutil.DecodeAddress(address, s.net)
	if err != nil {
		return nil, err
	}

	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.GenerateToAddress(numBlocks, addr, nil)
	})
	if err != nil {
		return nil, err
	}

	hashes := res.([]*chainhash.Hash)
	blockHashes := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		blockHashes = append(blockHashes, hash.String())
	}
	return blockHashes, nil
}

func (s *service) SendToAddress(
	address string, amount btcutil.Amount,
) (string, error) {
	addr, err := btcutil.DecodeAddress(address, s.net)
	if err != nil {
		return "", err
	}

	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.SendToAddress(addr, amount)
	})
	if err != nil {
		return "", err
	}
	return res.(*chainhash.Hash).String(), nil
}

func (s *service) GetChainInfo() (*chain.ChainInfo, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.GetBlockChainInfo()
	})
	if err != nil {
		return nil, err
	}

	info := res.(*btcjson.GetBlockChainInfoResult)
	return &chain.ChainInfo{
		Network:     info.Chain,
		BlockHeight: info.Blocks,
	}, nil
}

func (s *service) Close() {
	s.client.Shutdown()
}
