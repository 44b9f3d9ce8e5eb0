// Command dump saves storage of the deployed BookIt contract suite into a
// local JSON file. The result may be used to inspect the chain state offline
// or to compare states of different environments.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type storageRecord struct {
	// Key and Value are base58-encoded raw storage item of the contract.
	Key   string `json:"key"`
	Value string `json:"value"`
}

type contractDump struct {
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Records []storageRecord `json:"records"`
}

type chainDump struct {
	Label     string         `json:"label"`
	Block     uint32         `json:"block"`
	Contracts []contractDump `json:"contracts"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	accountHash := flag.String("account", "", "LE script hash of the Account contract")
	eventHash := flag.String("event", "", "LE script hash of the Event contract")
	reviewHash := flag.String("review", "", "LE script hash of the Review contract")
	reputationHash := flag.String("reputation", "", "LE script hash of the Reputation contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	}

	contracts := map[string]*string{
		"account":    accountHash,
		"event":      eventHash,
		"review":     reviewHash,
		"reputation": reputationHash,
	}

	addresses := make(map[string]util.Uint160, len(contracts))
	for name, h := range contracts {
		if *h == "" {
			log.Fatalf("missing script hash of the '%s' contract", name)
		}

		addr, err := util.Uint160DecodeStringLE(*h)
		if err != nil {
			log.Fatal(fmt.Errorf("decode script hash of the '%s' contract: %w", name, err))
		}

		addresses[name] = addr
	}

	const rootDir = "testdata"

	err := os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, rootDir, *chainLabel, addresses)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("BookIt contracts are successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir, label string, addresses map[string]util.Uint160) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	d := chainDump{
		Label: label,
		Block: b.currentBlock,
	}

	names := make([]string, 0, len(addresses))
	for name := range addresses {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		log.Printf("Processing contract '%s'...\n", name)

		c, err := overtakeContract(b, name, addresses[name])
		if err != nil {
			return err
		}

		d.Contracts = append(d.Contracts, c)
	}

	data, err := json.MarshalIndent(d, "", " ")
	if err != nil {
		return fmt.Errorf("encode dump: %w", err)
	}

	err = os.WriteFile(filepath.Join(rootDir, label+".json"), data, 0600)
	if err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	return nil
}

func overtakeContract(from *remoteBlockchain, name string, addr util.Uint160) (contractDump, error) {
	ctr, err := from.getContract(addr)
	if err != nil {
		return contractDump{}, fmt.Errorf("get '%s' contract state: %w", name, err)
	}

	res := contractDump{
		Name:    name,
		Address: ctr.Hash.StringLE(),
	}

	err = from.iterateContractStorage(ctr.Hash, func(key, value []byte) error {
		res.Records = append(res.Records, storageRecord{
			Key:   base58.Encode(key),
			Value: base58.Encode(value),
		})
		return nil
	})
	if err != nil {
		return contractDump{}, fmt.Errorf("iterate '%s' contract storage: %w", name, err)
	}

	return res, nil
}
