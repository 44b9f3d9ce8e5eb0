package tests

import (
	"testing"

	"github.com/dhananjaypai08/bookit-contract/common"
	"github.com/dhananjaypai08/bookit-contract/contracts/event/eventconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestAddEvent(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.event

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	eventArgs := func(organizer any, capacity, priceWei int64) []any {
		return []any{organizer, "Dev Meetup", "An evening of lightning talks",
			"2024-06-01", "18:00", "Community Hall",
			capacity, priceWei, "ipfs://QmLogo", "meetup"}
	}

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "addEvent",
		eventArgs(acc.ScriptHash(), 10, 500)...)
	cAcc.InvokeFail(t, eventconst.ErrNotStaked, "addEvent",
		eventArgs(acc.ScriptHash(), 10, 500)...)

	staked := newStakedAccount(t, inv)
	cStaked := c.WithSigners(staked)

	cStaked.InvokeFail(t, eventconst.ErrZeroCapacity, "addEvent",
		eventArgs(staked.ScriptHash(), 0, 500)...)
	cStaked.InvokeFail(t, eventconst.ErrPriceRange, "addEvent",
		eventArgs(staked.ScriptHash(), 10, -1)...)
	cStaked.InvokeFail(t, eventconst.ErrPriceRange, "addEvent",
		eventArgs(staked.ScriptHash(), 2, eventconst.MaxPaymentWei/2+1)...)

	h := cStaked.Invoke(t, 1, "addEvent", eventArgs(staked.ScriptHash(), 10, 500)...)
	aer := cStaked.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "EventAdded", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(1),
		addrItem(staked.ScriptHash()),
		stackitem.Make(10),
		stackitem.Make(500),
	}), aer.Events[0].Item)

	// identifiers are dense
	cStaked.Invoke(t, 2, "addEvent", eventArgs(staked.ScriptHash(), 5, 0)...)
	c.Invoke(t, 2, "count")
}

func TestGetEvent(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.event

	c.Invoke(t, 0, "count")
	c.InvokeFail(t, eventconst.ErrNotFound, "get", int64(1))
	c.InvokeFail(t, eventconst.ErrNotFound, "organizer", int64(1))

	organizer := newStakedAccount(t, inv)
	id := addTestEvent(t, inv, organizer, 10, 500)

	s, err := c.TestInvoke(t, "get", id)
	require.NoError(t, err)

	fields := s.Pop().Array()
	require.Len(t, fields, 12)
	require.Equal(t, id, intValue(t, fields[0]))
	require.Equal(t, organizer.ScriptHash().BytesBE(), bytesValue(t, fields[1]))
	require.Equal(t, []byte("Dev Meetup"), bytesValue(t, fields[2]))
	require.Equal(t, []byte("Community Hall"), bytesValue(t, fields[6]))
	require.Equal(t, int64(10), intValue(t, fields[7]))
	require.Equal(t, int64(10), intValue(t, fields[8]))
	require.Equal(t, int64(500), intValue(t, fields[9]))

	c.Invoke(t, addrItem(organizer.ScriptHash()), "organizer", id)
}

func TestListEvents(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.event

	s, err := c.TestInvoke(t, "listEvents")
	require.NoError(t, err)
	require.Len(t, s.Pop().Array(), 0)

	organizer := newStakedAccount(t, inv)
	first := addTestEvent(t, inv, organizer, 10, 500)
	second := addTestEvent(t, inv, organizer, 5, 0)

	s, err = c.TestInvoke(t, "listEvents")
	require.NoError(t, err)

	events := s.Pop().Array()
	require.Len(t, events, 2)
	require.Equal(t, first, intValue(t, events[0].Value().([]stackitem.Item)[0]))
	require.Equal(t, second, intValue(t, events[1].Value().([]stackitem.Item)[0]))
}

func TestBuyTickets(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.event

	organizer := newStakedAccount(t, inv)
	id := addTestEvent(t, inv, organizer, 3, 500)

	bob := c.NewAccount(t)
	carol := c.NewAccount(t)
	cBob := c.WithSigners(bob)
	cCarol := c.WithSigners(carol)

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "buyTickets", id, bob.ScriptHash(), int64(1))
	cBob.InvokeFail(t, eventconst.ErrNotFound, "buyTickets", id+1, bob.ScriptHash(), int64(1))
	cBob.InvokeFail(t, eventconst.ErrZeroQuantity, "buyTickets", id, bob.ScriptHash(), int64(0))
	cBob.InvokeFail(t, eventconst.ErrZeroQuantity, "buyTickets", id, bob.ScriptHash(), int64(-1))

	h := cBob.Invoke(t, 1000, "buyTickets", id, bob.ScriptHash(), int64(2))
	aer := cBob.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "TicketsPurchased", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(id),
		addrItem(bob.ScriptHash()),
		stackitem.Make(2),
		stackitem.Make(1000),
	}), aer.Events[0].Item)

	// 1 ticket left, a request for 2 fails whole
	cCarol.InvokeFail(t, eventconst.ErrSoldOut, "buyTickets", id, carol.ScriptHash(), int64(2))
	cCarol.Invoke(t, 500, "buyTickets", id, carol.ScriptHash(), int64(1))
	cCarol.InvokeFail(t, eventconst.ErrSoldOut, "buyTickets", id, carol.ScriptHash(), int64(1))

	s, err := c.TestInvoke(t, "get", id)
	require.NoError(t, err)
	fields := s.Pop().Array()
	require.Equal(t, int64(3), intValue(t, fields[7]))
	require.Equal(t, int64(0), intValue(t, fields[8]))
}

func TestBuyTicketsPaymentOverflow(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.event

	organizer := newStakedAccount(t, inv)
	id := addTestEvent(t, inv, organizer, 1, eventconst.MaxPaymentWei)

	buyer := c.NewAccount(t)
	c.WithSigners(buyer).InvokeFail(t, eventconst.ErrPaymentOverflow,
		"buyTickets", id, buyer.ScriptHash(), int64(2))
}

func TestHoldings(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.event

	organizer := newStakedAccount(t, inv)
	first := addTestEvent(t, inv, organizer, 10, 500)
	second := addTestEvent(t, inv, organizer, 5, 0)

	buyer := c.NewAccount(t)
	cBuyer := c.WithSigners(buyer)

	c.InvokeFail(t, eventconst.ErrNotFound, "holdingOf", second+1, buyer.ScriptHash())

	// holding of a buyer without purchases is zero-valued
	s, err := c.TestInvoke(t, "holdingOf", first, buyer.ScriptHash())
	require.NoError(t, err)
	holding := s.Pop().Array()
	require.Equal(t, first, intValue(t, holding[0]))
	require.Equal(t, buyer.ScriptHash().BytesBE(), bytesValue(t, holding[1]))
	require.Equal(t, int64(0), intValue(t, holding[2]))
	require.Equal(t, int64(0), intValue(t, holding[3]))

	cBuyer.Invoke(t, 500, "buyTickets", first, buyer.ScriptHash(), int64(1))
	cBuyer.Invoke(t, 1000, "buyTickets", first, buyer.ScriptHash(), int64(2))
	cBuyer.Invoke(t, 0, "buyTickets", second, buyer.ScriptHash(), int64(4))

	// repeated purchases accumulate in one holding
	s, err = c.TestInvoke(t, "holdingOf", first, buyer.ScriptHash())
	require.NoError(t, err)
	holding = s.Pop().Array()
	require.Equal(t, int64(3), intValue(t, holding[2]))
	require.Equal(t, int64(1500), intValue(t, holding[3]))

	s, err = c.TestInvoke(t, "getAllBoughtEvents", buyer.ScriptHash())
	require.NoError(t, err)

	tickets := s.Pop().Array()
	require.Len(t, tickets, 2)

	ticket := tickets[0].Value().([]stackitem.Item)
	ev := ticket[0].Value().([]stackitem.Item)
	h := ticket[1].Value().([]stackitem.Item)
	require.Equal(t, first, intValue(t, ev[0]))
	require.Equal(t, int64(3), intValue(t, h[2]))
	require.Equal(t, int64(1500), intValue(t, h[3]))

	ticket = tickets[1].Value().([]stackitem.Item)
	ev = ticket[0].Value().([]stackitem.Item)
	h = ticket[1].Value().([]stackitem.Item)
	require.Equal(t, second, intValue(t, ev[0]))
	require.Equal(t, int64(4), intValue(t, h[2]))
	require.Equal(t, int64(0), intValue(t, h[3]))

	s, err = c.TestInvoke(t, "iterateHoldings", buyer.ScriptHash())
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	count := 0
	for iter.Next() {
		h := iter.Value().Value().([]stackitem.Item)
		require.Equal(t, buyer.ScriptHash().BytesBE(), bytesValue(t, h[1]))
		count++
	}
	require.Equal(t, 2, count)
}
