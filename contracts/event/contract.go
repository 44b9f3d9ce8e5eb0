package event

import (
	"github.com/dhananjaypai08/bookit-contract/common"
	"github.com/dhananjaypai08/bookit-contract/contracts/event/eventconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Event is a single ticketed event listed on the platform. CapacityTotal
	// and PriceWei are fixed at creation, CapacityRemaining only decreases.
	Event struct {
		ID                int
		Organizer         interop.Hash160
		Name              string
		Description       string
		Date              string
		Time              string
		Venue             string
		CapacityTotal     int
		CapacityRemaining int
		PriceWei          int
		LogoURI           string
		Category          string
	}

	// Holding accumulates all purchases of one buyer for one event.
	Holding struct {
		EventID      int
		Buyer        interop.Hash160
		Quantity     int
		TotalPaidWei int
	}

	// OwnedTicket pairs an event with the caller's holding for it.
	OwnedTicket struct {
		Event   Event
		Holding Holding
	}
)

const (
	accountContractKey    = "accountScriptHash"
	reputationContractKey = "reputationScriptHash"

	counterKey = "eventCounter"

	eventPrefix   = 'e'
	holdingPrefix = 'h'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)

	if isUpdate {
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	addrAccount := args[0].(interop.Hash160)
	if len(addrAccount) != interop.Hash160Len {
		panic("invalid account contract address")
	}

	addrReputation := args[1].(interop.Hash160)
	if len(addrReputation) != interop.Hash160Len {
		panic("invalid reputation contract address")
	}

	storage.Put(ctx, accountContractKey, addrAccount)
	storage.Put(ctx, reputationContractKey, addrReputation)

	runtime.Log("event contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("event contract updated")
}

// AddEvent creates a new event and returns its identifier. Identifiers are
// dense and monotonically increasing starting from 1. It can be invoked only
// by the organizer and only after the organizer has staked in the Account
// contract. Ticket price is capped so that the payment for any sellable
// quantity fits the payment domain.
//
// It produces EventAdded notification.
func AddEvent(organizer interop.Hash160, name, description, date, time, venue string,
	capacity, priceWei int, logoURI, category string) int {
	ctx := storage.GetContext()

	if len(organizer) != interop.Hash160Len {
		panic("invalid organizer address")
	}
	common.CheckOwnerWitness(organizer)

	accountContractAddr := storage.Get(ctx, accountContractKey).(interop.Hash160)
	staked := contract.Call(accountContractAddr, "isStaked", contract.ReadOnly, organizer).(bool)
	if !staked {
		panic(eventconst.ErrNotStaked)
	}

	if capacity <= 0 {
		panic(eventconst.ErrZeroCapacity)
	}
	if priceWei < 0 || priceWei > eventconst.MaxPaymentWei/capacity {
		panic(eventconst.ErrPriceRange)
	}

	id := Count() + 1
	storage.Put(ctx, counterKey, id)

	ev := Event{
		ID:                id,
		Organizer:         organizer,
		Name:              name,
		Description:       description,
		Date:              date,
		Time:              time,
		Venue:             venue,
		CapacityTotal:     capacity,
		CapacityRemaining: capacity,
		PriceWei:          priceWei,
		LogoURI:           logoURI,
		Category:          category,
	}
	common.SetSerialized(ctx, eventKey(id), ev)

	reputationContractAddr := storage.Get(ctx, reputationContractKey).(interop.Hash160)
	contract.Call(reputationContractAddr, "addOrganizedEvent", contract.All, organizer)

	runtime.Log("event added")
	runtime.Notify("EventAdded", id, organizer, capacity, priceWei)

	return id
}

// BuyTickets sells the requested quantity of tickets of the event to the
// buyer and returns the total amount paid in wei. The request is
// all-or-nothing: if fewer tickets remain than requested, the whole call
// fails and no state changes. Capacity check and decrement happen within one
// transition, so the sum of all successful purchases never exceeds the
// event's total capacity. Repeated purchases accumulate in a single holding.
// It can be invoked only by the buyer.
//
// It produces TicketsPurchased notification.
func BuyTickets(id int, buyer interop.Hash160, quantity int) int {
	ctx := storage.GetContext()

	if len(buyer) != interop.Hash160Len {
		panic("invalid buyer address")
	}
	common.CheckOwnerWitness(buyer)

	ev := getEvent(ctx, id)

	if quantity <= 0 {
		panic(eventconst.ErrZeroQuantity)
	}
	if ev.PriceWei > 0 && quantity > eventconst.MaxPaymentWei/ev.PriceWei {
		panic(eventconst.ErrPaymentOverflow)
	}
	if quantity > ev.CapacityRemaining {
		panic(eventconst.ErrSoldOut)
	}

	totalPaid := ev.PriceWei * quantity

	ev.CapacityRemaining -= quantity
	common.SetSerialized(ctx, eventKey(id), ev)

	key := holdingKey(buyer, id)
	h := Holding{
		EventID: id,
		Buyer:   buyer,
	}
	data := storage.Get(ctx, key)
	if data != nil {
		h = std.Deserialize(data.([]byte)).(Holding)
	}
	h.Quantity += quantity
	h.TotalPaidWei += totalPaid
	common.SetSerialized(ctx, key, h)

	reputationContractAddr := storage.Get(ctx, reputationContractKey).(interop.Hash160)
	contract.Call(reputationContractAddr, "addPurchasedTickets", contract.All, buyer, quantity)

	runtime.Log("tickets sold")
	runtime.Notify("TicketsPurchased", id, buyer, quantity, totalPaid)

	return totalPaid
}

// Get returns the event by its identifier.
//
// If the event doesn't exist, it panics with ErrNotFound.
func Get(id int) Event {
	ctx := storage.GetReadOnlyContext()
	return getEvent(ctx, id)
}

// Organizer returns the address that created the event.
//
// If the event doesn't exist, it panics with ErrNotFound.
func Organizer(id int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getEvent(ctx, id).Organizer
}

// ListEvents returns all events in creation order.
func ListEvents() []Event {
	ctx := storage.GetReadOnlyContext()

	events := []Event{}
	for id := 1; id <= Count(); id++ {
		events = append(events, getEvent(ctx, id))
	}

	return events
}

// Count returns the number of created events.
func Count() int {
	ctx := storage.GetReadOnlyContext()

	count := storage.Get(ctx, counterKey)
	if count == nil {
		return 0
	}

	return count.(int)
}

// HoldingOf returns the cumulative holding of the buyer for the event. The
// holding is zero-valued if the buyer has never purchased tickets of the
// event.
//
// If the event doesn't exist, it panics with ErrNotFound.
func HoldingOf(id int, buyer interop.Hash160) Holding {
	ctx := storage.GetReadOnlyContext()

	getEvent(ctx, id)

	data := storage.Get(ctx, holdingKey(buyer, id))
	if data == nil {
		return Holding{
			EventID: id,
			Buyer:   buyer,
		}
	}

	return std.Deserialize(data.([]byte)).(Holding)
}

// GetAllBoughtEvents returns every event the buyer holds tickets for,
// together with the holding itself.
func GetAllBoughtEvents(buyer interop.Hash160) []OwnedTicket {
	ctx := storage.GetReadOnlyContext()

	tickets := []OwnedTicket{}

	it := storage.Find(ctx, append([]byte{holdingPrefix}, buyer...), storage.ValuesOnly)
	for iterator.Next(it) {
		h := std.Deserialize(iterator.Value(it).([]byte)).(Holding)
		tickets = append(tickets, OwnedTicket{
			Event:   getEvent(ctx, h.EventID),
			Holding: h,
		})
	}

	return tickets
}

// IterateHoldings is like [GetAllBoughtEvents] but iterates over raw holdings
// of the buyer without joining events.
func IterateHoldings(buyer interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{holdingPrefix}, buyer...),
		storage.ValuesOnly|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func eventKey(id int) []byte {
	return append([]byte{eventPrefix}, convert.ToBytes(id)...)
}

func holdingKey(buyer interop.Hash160, id int) []byte {
	key := append([]byte{holdingPrefix}, buyer...)
	return append(key, convert.ToBytes(id)...)
}

func getEvent(ctx storage.Context, id int) Event {
	data := storage.Get(ctx, eventKey(id))
	if data == nil {
		panic(eventconst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Event)
}
