package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
	"github.com/hashswap-network/hashswapd/internal/core/ports"
)

// RepoManager holds the badgerhold store and exposes the swap repository
// backed by it.
type RepoManager struct {
	store *badgerhold.Store

	swapRepository domain.SwapRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk in
// a dedicated directory under the given data dir.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	swapDb, err := createDb(filepath.Join(baseDbDir, "swaps"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening swaps db: %w", err)
	}

	return &RepoManager{
		store:          swapDb,
		swapRepository: NewSwapRepositoryImpl(swapDb),
	}, nil
}

func (d *RepoManager) SwapRepository() domain.SwapRepository {
	return d.swapRepository
}

func (d *RepoManager) Close() {
	// nolint
	d.store.Close()
}

// JSONEncode is a custom JSON based encoder for badger.
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)
	if err := en.Encode(value); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	if _, err := buff.Write(data); err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
