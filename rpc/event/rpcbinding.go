// Package event contains RPC wrappers for BookIt Event contract.
package event

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Event is a contract-specific event.Event type used by its methods.
type Event struct {
	ID                *big.Int
	Organizer         util.Uint160
	Name              string
	Description       string
	Date              string
	Time              string
	Venue             string
	CapacityTotal     *big.Int
	CapacityRemaining *big.Int
	PriceWei          *big.Int
	LogoURI           string
	Category          string
}

// Holding is a contract-specific event.Holding type used by its methods.
type Holding struct {
	EventID      *big.Int
	Buyer        util.Uint160
	Quantity     *big.Int
	TotalPaidWei *big.Int
}

// OwnedTicket is a contract-specific event.OwnedTicket type used by its methods.
type OwnedTicket struct {
	Event   *Event
	Holding *Holding
}

// EventAddedEvent represents "EventAdded" event emitted by the contract.
type EventAddedEvent struct {
	ID        *big.Int
	Organizer util.Uint160
	Capacity  *big.Int
	PriceWei  *big.Int
}

// TicketsPurchasedEvent represents "TicketsPurchased" event emitted by the contract.
type TicketsPurchasedEvent struct {
	ID           *big.Int
	Buyer        util.Uint160
	Quantity     *big.Int
	TotalPaidWei *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
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

// Count invokes `count` method of contract.
func (c *ContractReader) Count() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "count"))
}

// Get invokes `get` method of contract.
func (c *ContractReader) Get(id *big.Int) (*Event, error) {
	return itemToEvent(unwrap.Item(c.invoker.Call(c.hash, "get", id)))
}

// GetAllBoughtEvents invokes `getAllBoughtEvents` method of contract.
func (c *ContractReader) GetAllBoughtEvents(buyer util.Uint160) ([]*OwnedTicket, error) {
	arr, err := unwrap.Array(c.invoker.Call(c.hash, "getAllBoughtEvents", buyer))
	if err != nil {
		return nil, err
	}

	res := make([]*OwnedTicket, len(arr))
	for i := range arr {
		res[i], err = itemToOwnedTicket(arr[i], nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// HoldingOf invokes `holdingOf` method of contract.
func (c *ContractReader) HoldingOf(id *big.Int, buyer util.Uint160) (*Holding, error) {
	return itemToHolding(unwrap.Item(c.invoker.Call(c.hash, "holdingOf", id, buyer)))
}

// IterateHoldings invokes `iterateHoldings` method of contract.
func (c *ContractReader) IterateHoldings(buyer util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateHoldings", buyer))
}

// IterateHoldingsExpanded is similar to IterateHoldings (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateHoldingsExpanded(buyer util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateHoldings", _numOfIteratorItems, buyer))
}

// ListEvents invokes `listEvents` method of contract.
func (c *ContractReader) ListEvents() ([]*Event, error) {
	arr, err := unwrap.Array(c.invoker.Call(c.hash, "listEvents"))
	if err != nil {
		return nil, err
	}

	res := make([]*Event, len(arr))
	for i := range arr {
		res[i], err = itemToEvent(arr[i], nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// Organizer invokes `organizer` method of contract.
func (c *ContractReader) Organizer(id *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "organizer", id))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddEvent creates a transaction invoking `addEvent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddEvent(organizer util.Uint160, name string, description string, date string, time string, venue string, capacity *big.Int, priceWei *big.Int, logoURI string, category string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addEvent", organizer, name, description, date, time, venue, capacity, priceWei, logoURI, category)
}

// AddEventTransaction creates a transaction invoking `addEvent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddEventTransaction(organizer util.Uint160, name string, description string, date string, time string, venue string, capacity *big.Int, priceWei *big.Int, logoURI string, category string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addEvent", organizer, name, description, date, time, venue, capacity, priceWei, logoURI, category)
}

// AddEventUnsigned creates a transaction invoking `addEvent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddEventUnsigned(organizer util.Uint160, name string, description string, date string, time string, venue string, capacity *big.Int, priceWei *big.Int, logoURI string, category string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addEvent", nil, organizer, name, description, date, time, venue, capacity, priceWei, logoURI, category)
}

// BuyTickets creates a transaction invoking `buyTickets` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BuyTickets(id *big.Int, buyer util.Uint160, quantity *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buyTickets", id, buyer, quantity)
}

// BuyTicketsTransaction creates a transaction invoking `buyTickets` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyTicketsTransaction(id *big.Int, buyer util.Uint160, quantity *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buyTickets", id, buyer, quantity)
}

// BuyTicketsUnsigned creates a transaction invoking `buyTickets` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuyTicketsUnsigned(id *big.Int, buyer util.Uint160, quantity *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "buyTickets", nil, id, buyer, quantity)
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

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

// itemToEvent converts stack item into *Event.
func itemToEvent(item stackitem.Item, err error) (*Event, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Event)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Event from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Event) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 12 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	res.ID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	res.Organizer, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Organizer: %w", err)
	}

	res.Name, err = itemToString(arr[2])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	res.Description, err = itemToString(arr[3])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	res.Date, err = itemToString(arr[4])
	if err != nil {
		return fmt.Errorf("field Date: %w", err)
	}

	res.Time, err = itemToString(arr[5])
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	res.Venue, err = itemToString(arr[6])
	if err != nil {
		return fmt.Errorf("field Venue: %w", err)
	}

	res.CapacityTotal, err = arr[7].TryInteger()
	if err != nil {
		return fmt.Errorf("field CapacityTotal: %w", err)
	}

	res.CapacityRemaining, err = arr[8].TryInteger()
	if err != nil {
		return fmt.Errorf("field CapacityRemaining: %w", err)
	}

	res.PriceWei, err = arr[9].TryInteger()
	if err != nil {
		return fmt.Errorf("field PriceWei: %w", err)
	}

	res.LogoURI, err = itemToString(arr[10])
	if err != nil {
		return fmt.Errorf("field LogoURI: %w", err)
	}

	res.Category, err = itemToString(arr[11])
	if err != nil {
		return fmt.Errorf("field Category: %w", err)
	}

	return nil
}

// itemToHolding converts stack item into *Holding.
func itemToHolding(item stackitem.Item, err error) (*Holding, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Holding)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Holding from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Holding) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	res.EventID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field EventID: %w", err)
	}

	res.Buyer, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	res.Quantity, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	res.TotalPaidWei, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalPaidWei: %w", err)
	}

	return nil
}

// itemToOwnedTicket converts stack item into *OwnedTicket.
func itemToOwnedTicket(item stackitem.Item, err error) (*OwnedTicket, error) {
	if err != nil {
		return nil, err
	}
	var res = new(OwnedTicket)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of OwnedTicket from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *OwnedTicket) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	res.Event, err = itemToEvent(arr[0], nil)
	if err != nil {
		return fmt.Errorf("field Event: %w", err)
	}

	res.Holding, err = itemToHolding(arr[1], nil)
	if err != nil {
		return fmt.Errorf("field Holding: %w", err)
	}

	return nil
}

// EventAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "EventAdded" name from the provided [result.ApplicationLog].
func EventAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*EventAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EventAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "EventAdded" {
				continue
			}
			event := new(EventAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EventAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EventAddedEvent or
// returns an error if it's not possible to do to so.
func (e *EventAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.ID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Organizer, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Organizer: %w", err)
	}

	e.Capacity, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Capacity: %w", err)
	}

	e.PriceWei, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field PriceWei: %w", err)
	}

	return nil
}

// TicketsPurchasedEventsFromApplicationLog retrieves a set of all emitted events
// with "TicketsPurchased" name from the provided [result.ApplicationLog].
func TicketsPurchasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TicketsPurchasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TicketsPurchasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TicketsPurchased" {
				continue
			}
			event := new(TicketsPurchasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TicketsPurchasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TicketsPurchasedEvent or
// returns an error if it's not possible to do to so.
func (e *TicketsPurchasedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.ID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Buyer, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	e.Quantity, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	e.TotalPaidWei, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalPaidWei: %w", err)
	}

	return nil
}
