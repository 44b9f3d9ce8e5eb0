// Package reputation contains RPC wrappers for BookIt Reputation contract.
package reputation

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// AccountRank is a contract-specific reputation.AccountRank type used by its methods.
type AccountRank struct {
	Address    util.Uint160
	Score      *big.Int
	Rank       *big.Int
	Percentile *big.Int
	LastActive *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetAllUsers invokes `getAllUsers` method of contract.
func (c *ContractReader) GetAllUsers() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "getAllUsers"))
}

// GetReputationScore invokes `getReputationScore` method of contract.
func (c *ContractReader) GetReputationScore(addr util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getReputationScore", addr))
}

// RankAll invokes `rankAll` method of contract.
func (c *ContractReader) RankAll(filter string, order string) ([]*AccountRank, error) {
	arr, err := unwrap.Array(c.invoker.Call(c.hash, "rankAll", filter, order))
	if err != nil {
		return nil, err
	}

	res := make([]*AccountRank, len(arr))
	for i := range arr {
		res[i], err = itemToAccountRank(arr[i], nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddOrganizedEvent creates a transaction invoking `addOrganizedEvent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddOrganizedEvent(organizer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addOrganizedEvent", organizer)
}

// AddOrganizedEventTransaction creates a transaction invoking `addOrganizedEvent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddOrganizedEventTransaction(organizer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addOrganizedEvent", organizer)
}

// AddOrganizedEventUnsigned creates a transaction invoking `addOrganizedEvent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddOrganizedEventUnsigned(organizer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addOrganizedEvent", nil, organizer)
}

// AddPurchasedTickets creates a transaction invoking `addPurchasedTickets` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddPurchasedTickets(buyer util.Uint160, quantity *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addPurchasedTickets", buyer, quantity)
}

// AddPurchasedTicketsTransaction creates a transaction invoking `addPurchasedTickets` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddPurchasedTicketsTransaction(buyer util.Uint160, quantity *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addPurchasedTickets", buyer, quantity)
}

// AddPurchasedTicketsUnsigned creates a transaction invoking `addPurchasedTickets` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddPurchasedTicketsUnsigned(buyer util.Uint160, quantity *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addPurchasedTickets", nil, buyer, quantity)
}

// AddReceivedStars creates a transaction invoking `addReceivedStars` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddReceivedStars(organizer util.Uint160, stars *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addReceivedStars", organizer, stars)
}

// AddReceivedStarsTransaction creates a transaction invoking `addReceivedStars` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddReceivedStarsTransaction(organizer util.Uint160, stars *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addReceivedStars", organizer, stars)
}

// AddReceivedStarsUnsigned creates a transaction invoking `addReceivedStars` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddReceivedStarsUnsigned(organizer util.Uint160, stars *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addReceivedStars", nil, organizer, stars)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToAccountRank converts stack item into *AccountRank.
func itemToAccountRank(item stackitem.Item, err error) (*AccountRank, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AccountRank)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AccountRank from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AccountRank) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	res.Address, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		return util.Uint160DecodeBytesBE(b)
	}(arr[0])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	res.Score, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	res.Rank, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rank: %w", err)
	}

	res.Percentile, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Percentile: %w", err)
	}

	res.LastActive, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastActive: %w", err)
	}

	return nil
}
