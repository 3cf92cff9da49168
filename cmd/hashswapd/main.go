package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hashswap-network/hashswapd/internal/config"
	"github.com/hashswap-network/hashswapd/internal/core/application"
	"github.com/hashswap-network/hashswapd/internal/core/ports"
	dbbadger "github.com/hashswap-network/hashswapd/internal/infrastructure/storage/db/badger"
	"github.com/hashswap-network/hashswapd/internal/infrastructure/storage/db/inmemory"
	httpinterface "github.com/hashswap-network/hashswapd/internal/interfaces/http"
	"github.com/hashswap-network/hashswapd/pkg/chain/bitcoind"

	"github.com/btcsuite/btcd/btcutil"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	repoManager, err := newRepoManager()
	if err != nil {
		log.WithError(err).Fatal("error while opening db")
	}
	defer repoManager.Close()

	chainSvc, err := bitcoind.NewService(bitcoind.ServiceOpts{
		RPCAddress: config.GetString(config.PeerRPCAddressKey),
		RPCUser:    config.GetString(config.PeerRPCUserKey),
		RPCPass:    config.GetString(config.PeerRPCPassKey),
		DisableTLS: config.GetBool(config.PeerRPCNoTLSKey),
		Network:    config.GetNetworkParams(),
	})
	if err != nil {
		log.WithError(err).Fatal("error while connecting to the base-layer peer")
	}
	defer chainSvc.Close()

	swapSvc := application.NewSwapService(
		repoManager,
		chainSvc,
		config.GetNetworkParams(),
		config.GetDuration(config.QuoteExpiryDurationKey),
		btcutil.Amount(config.GetInt(config.DustLimitKey)),
	)
	reaper := application.NewSwapReaper(
		repoManager, config.GetDuration(config.ReaperIntervalKey),
	)

	listenAddr := config.GetString(config.HTTPListenAddrKey)
	server := &http.Server{
		Addr:    listenAddr,
		Handler: httpinterface.NewSwapHandler(swapSvc).Router(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("http interface is listening on %s", listenAddr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return reaper.Start(gctx)
	})
	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		select {
		case sig := <-sigChan:
			log.Infof("received signal %s, shutting down", sig)
		case <-gctx.Done():
		}
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(
			context.Background(), 10*time.Second,
		)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("daemon stopped with error")
	}
	log.Info("exiting")
}

func newRepoManager() (ports.RepoManager, error) {
	switch dbType := config.GetString(config.DBTypeKey); dbType {
	case config.DBInMemory:
		return inmemory.NewRepoManager(), nil
	case config.DBBadger:
		dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
		return dbbadger.NewRepoManager(dbDir, nil)
	default:
		return nil, fmt.Errorf("unsupported db type %s", dbType)
	}
}
