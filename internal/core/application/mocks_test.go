package application_test

import (
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"

	"github.com/hashswap-network/hashswapd/pkg/chain"
)

// fakeChainService is an in-memory stand-in for the base-layer peer. It
// counts calls so that tests can assert how many payouts were actually
// submitted.
type fakeChainService struct {
	lock sync.Mutex

	balance    btcutil.Amount
	balanceErr error
	sendErr    error

	balanceCalls int
	sendCalls    int
	sentTxids    []string
}

func newFakeChainService(balance btcutil.Amount) *fakeChainService {
	return &fakeChainService{balance: balance}
}

func (m *fakeChainService) GetBalance() (btcutil.Amount, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.balanceCalls++
	if m.balanceErr != nil {
		return 0, m.balanceErr
	}
	return m.balance, nil
}

func (m *fakeChainService) GetNewAddress() (string, error) {
	return "", nil
}

func (m *fakeChainService) GenerateToAddress(
	numBlocks int64, address string,
) ([]string, error) {
	return nil, nil
}

func (m *fakeChainService) SendToAddress(
	address string, amount btcutil.Amount,
) (string, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.sendCalls++
	if m.sendErr != nil {
		return "", m.sendErr
	}

	m.balance -= amount
	txid := uuid.New().String()
	m.sentTxids = append(m.sentTxids, txid)
	return txid, nil
}

func (m *fakeChainService) GetChainInfo() (*chain.ChainInfo, error) {
	return &chain.ChainInfo{Network: "regtest", BlockHeight: 101}, nil
}

func (m *fakeChainService) Close() {}

func (m *fakeChainService) setBalance(balance btcutil.Amount) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.balance = balance
}

func (m *fakeChainService) setSendErr(err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.sendErr = err
}

func (m *fakeChainService) setBalanceErr(err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.balanceErr = err
}

func (m *fakeChainService) numOfBalanceCalls() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.balanceCalls
}

func (m *fakeChainService) numOfSendCalls() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.sendCalls
}
