package tests

import (
	"bytes"
	"sort"
	"testing"

	"github.com/dhananjaypai08/bookit-contract/common"
	"github.com/dhananjaypai08/bookit-contract/contracts/event/eventconst"
	"github.com/dhananjaypai08/bookit-contract/contracts/review/reviewconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func giveReview(t *testing.T, inv bookitInvokers, reviewer neotest.Signer, eventID int64, stars int64) {
	inv.review.WithSigners(reviewer).Invoke(t, stackitem.Null{}, "giveReview",
		eventID, reviewer.ScriptHash(), "would attend again", int64(1717268400), stars)
}

func TestGiveReview(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.review

	organizer := newStakedAccount(t, inv)
	first := addTestEvent(t, inv, organizer, 10, 500)
	second := addTestEvent(t, inv, organizer, 5, 0)

	alice := c.NewAccount(t)
	cAlice := c.WithSigners(alice)

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "giveReview",
		first, alice.ScriptHash(), "great", int64(1717268400), int64(5))
	cAlice.InvokeFail(t, eventconst.ErrNotFound, "giveReview",
		second+1, alice.ScriptHash(), "great", int64(1717268400), int64(5))
	cAlice.InvokeFail(t, eventconst.ErrNotFound, "giveReview",
		int64(0), alice.ScriptHash(), "great", int64(1717268400), int64(5))
	cAlice.InvokeFail(t, reviewconst.ErrStarsRange, "giveReview",
		first, alice.ScriptHash(), "great", int64(1717268400), int64(0))
	cAlice.InvokeFail(t, reviewconst.ErrStarsRange, "giveReview",
		first, alice.ScriptHash(), "great", int64(1717268400), int64(6))

	h := cAlice.Invoke(t, stackitem.Null{}, "giveReview",
		first, alice.ScriptHash(), "great", int64(1717268400), int64(5))
	aer := cAlice.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "ReviewAdded", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(first),
		addrItem(alice.ScriptHash()),
		stackitem.Make(5),
	}), aer.Events[0].Item)

	// one review per (event, reviewer) pair
	cAlice.InvokeFail(t, reviewconst.ErrDuplicate, "giveReview",
		first, alice.ScriptHash(), "changed my mind", int64(1717268401), int64(1))

	// same reviewer, another event
	giveReview(t, inv, alice, second, 4)

	// another reviewer, same event
	bob := c.NewAccount(t)
	giveReview(t, inv, bob, first, 4)

	c.Invoke(t, 2, "countOf", first)
	c.Invoke(t, 1, "countOf", second)
}

func TestGetAllReview(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.review

	c.InvokeFail(t, eventconst.ErrNotFound, "getAllReview", int64(1))
	c.InvokeFail(t, eventconst.ErrNotFound, "countOf", int64(1))

	organizer := newStakedAccount(t, inv)
	id := addTestEvent(t, inv, organizer, 10, 500)

	s, err := c.TestInvoke(t, "getAllReview", id)
	require.NoError(t, err)
	all := s.Pop().Array()
	require.Len(t, all[0].Value().([]stackitem.Item), 0)
	require.Equal(t, int64(0), intValue(t, all[1]))

	alice := c.NewAccount(t)
	bob := c.NewAccount(t)
	giveReview(t, inv, alice, id, 5)
	giveReview(t, inv, bob, id, 4)

	s, err = c.TestInvoke(t, "getAllReview", id)
	require.NoError(t, err)
	all = s.Pop().Array()

	reviews := all[0].Value().([]stackitem.Item)
	require.Len(t, reviews, 2)

	// reviews come out in reviewer address order
	reviewers := [][]byte{alice.ScriptHash().BytesBE(), bob.ScriptHash().BytesBE()}
	sort.Slice(reviewers, func(i, j int) bool { return bytes.Compare(reviewers[i], reviewers[j]) < 0 })

	for i := range reviews {
		r := reviews[i].Value().([]stackitem.Item)
		require.Equal(t, id, intValue(t, r[0]))
		require.Equal(t, reviewers[i], bytesValue(t, r[1]))
		require.Equal(t, []byte("would attend again"), bytesValue(t, r[2]))
		require.Equal(t, int64(1717268400), intValue(t, r[3]))
	}

	// (5+4)/2 = 4.5 rounds half up
	require.Equal(t, int64(5), intValue(t, all[1]))

	carol := c.NewAccount(t)
	giveReview(t, inv, carol, id, 1)

	// (5+4+1)/3 rounds to 3
	s, err = c.TestInvoke(t, "getAllReview", id)
	require.NoError(t, err)
	require.Equal(t, int64(3), intValue(t, s.Pop().Array()[1]))
}
