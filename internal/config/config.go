package config

import (
	"fmt"
	"os"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// HTTPListenAddrKey is the address where the HTTP interface will listen on.
	HTTPListenAddrKey = "HTTP_LISTEN_ADDR"
	// LogLevelKey are the different logging levels. For reference on the values
	// https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DatadirKey is the local data directory to store the internal state of
	// the daemon.
	DatadirKey = "DATADIR"
	// DBTypeKey is used to switch database type between those supported.
	DBTypeKey = "DB_TYPE"
	// NetworkKey is the base-layer network the daemon operates on, one of
	// mainnet, testnet3, regtest.
	NetworkKey = "NETWORK"
	// PeerRPCAddressKey is the host:port of the base-layer peer's JSON-RPC
	// interface.
	PeerRPCAddressKey = "PEER_RPC_ADDR"
	// PeerRPCUserKey ...
	PeerRPCUserKey = "PEER_RPC_USER"
	// PeerRPCPassKey ...
	PeerRPCPassKey = "PEER_RPC_PASS"
	// PeerRPCNoTLSKey disables TLS on the connection with the peer.
	PeerRPCNoTLSKey = "PEER_RPC_NO_TLS"
	// QuoteExpiryDurationKey is the duration in seconds a swap quote stays
	// committable before the reaper marks it expired.
	QuoteExpiryDurationKey = "QUOTE_EXPIRY_TIME"
	// ReaperIntervalKey is the interval in seconds between two scans of the
	// reaper marking stale quotes as expired.
	ReaperIntervalKey = "REAPER_INTERVAL"
	// DustLimitKey is the minimum transferable amount in satoshis below which
	// a payout is rejected as uneconomical.
	DustLimitKey = "DUST_LIMIT"

	// DBBadger ...
	DBBadger = "badger"
	// DBInMemory ...
	DBInMemory = "inmemory"

	// DbLocation is the dir under the datadir where the db files are stored.
	DbLocation = "db"
)

var (
	vip *viper.Viper

	defaultDatadir = btcutil.AppDataDir("hashswapd", false)

	supportedNetworks = map[string]*chaincfg.Params{
		"mainnet":  &chaincfg.MainNetParams,
		"testnet3": &chaincfg.TestNet3Params,
		"regtest":  &chaincfg.RegressionNetParams,
	}
	supportedDbs = map[string]struct{}{
		DBBadger:   {},
		DBInMemory: {},
	}
)

// InitConfig loads the daemon configuration from environment variables
// prefixed with HASHSWAP_ and validates it.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("HASHSWAP")
	vip.AutomaticEnv()

	vip.SetDefault(HTTPListenAddrKey, ":9945")
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(NetworkKey, "regtest")
	vip.SetDefault(PeerRPCNoTLSKey, true)
	vip.SetDefault(QuoteExpiryDurationKey, 600)
	vip.SetDefault(ReaperIntervalKey, 60)
	vip.SetDefault(DustLimitKey, 546)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetDuration reads the value of the given key as a number of seconds.
func GetDuration(key string) time.Duration {
	return time.Duration(vip.GetInt(key)) * time.Second
}

// GetNetworkParams returns the chain params for the configured network.
func GetNetworkParams() *chaincfg.Params {
	return supportedNetworks[GetString(NetworkKey)]
}

// GetDatadir returns the data directory of the daemon.
func GetDatadir() string {
	return GetString(DatadirKey)
}

func validate() error {
	if _, ok := supportedNetworks[GetString(NetworkKey)]; !ok {
		return fmt.Errorf("network must be one of mainnet, testnet3, regtest")
	}
	if _, ok := supportedDbs[GetString(DBTypeKey)]; !ok {
		return fmt.Errorf("db type must be one of %s, %s", DBBadger, DBInMemory)
	}
	if GetString(PeerRPCAddressKey) == "" {
		return fmt.Errorf("%s must be defined", PeerRPCAddressKey)
	}
	if GetInt(QuoteExpiryDurationKey) <= 0 {
		return fmt.Errorf("%s must be a positive number of seconds", QuoteExpiryDurationKey)
	}
	if GetInt(ReaperIntervalKey) <= 0 {
		return fmt.Errorf("%s must be a positive number of seconds", ReaperIntervalKey)
	}
	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	if err := makeDirectoryIfNotExists(datadir); err != nil {
		return err
	}
	return makeDirectoryIfNotExists(fmt.Sprintf("%s/%s", datadir, DbLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debugf("creating directory %s", path)
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
