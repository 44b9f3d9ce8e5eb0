package tests

import (
	"bytes"
	"sort"
	"testing"

	"github.com/dhananjaypai08/bookit-contract/contracts/account/accountconst"
	"github.com/dhananjaypai08/bookit-contract/contracts/reputation/reputationconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type rankRow struct {
	addr       []byte
	score      int64
	rank       int64
	percentile int64
}

func rankAllRows(t *testing.T, c *neotest.ContractInvoker, filter, order string) []rankRow {
	s, err := c.TestInvoke(t, "rankAll", filter, order)
	require.NoError(t, err)

	items := s.Pop().Array()
	rows := make([]rankRow, 0, len(items))
	for _, item := range items {
		fields := item.Value().([]stackitem.Item)
		rows = append(rows, rankRow{
			addr:       bytesValue(t, fields[0]),
			score:      intValue(t, fields[1]),
			rank:       intValue(t, fields[2]),
			percentile: intValue(t, fields[3]),
		})
	}
	return rows
}

func TestActivitySources(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.reputation

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	// counters are fed by the event and review contracts only
	c.InvokeFail(t, reputationconst.ErrForbiddenSource, "addOrganizedEvent", acc.ScriptHash())
	cAcc.InvokeFail(t, reputationconst.ErrForbiddenSource, "addOrganizedEvent", acc.ScriptHash())
	cAcc.InvokeFail(t, reputationconst.ErrForbiddenSource, "addPurchasedTickets", acc.ScriptHash(), int64(1))
	cAcc.InvokeFail(t, reputationconst.ErrForbiddenSource, "addReceivedStars", acc.ScriptHash(), int64(5))
}

func TestGetReputationScore(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.reputation

	organizer := newStakedAccount(t, inv)
	c.Invoke(t, 0, "getReputationScore", organizer.ScriptHash())

	first := addTestEvent(t, inv, organizer, 10, 500)
	addTestEvent(t, inv, organizer, 5, 0)
	c.Invoke(t, 2*accountconst.DefaultScoreOrganizedWeight, "getReputationScore", organizer.ScriptHash())

	buyer := inv.event.NewAccount(t)
	inv.event.WithSigners(buyer).Invoke(t, 1500, "buyTickets", first, buyer.ScriptHash(), int64(3))
	c.Invoke(t, 3*accountconst.DefaultScoreTicketsWeight, "getReputationScore", buyer.ScriptHash())

	// a 5-star review adds the mean star rating (x10) to the organizer
	reviewer := inv.review.NewAccount(t)
	giveReview(t, inv, reviewer, first, 5)
	c.Invoke(t, 2*accountconst.DefaultScoreOrganizedWeight+50*accountconst.DefaultScoreStarsWeight,
		"getReputationScore", organizer.ScriptHash())

	// the reviewer itself earns nothing
	c.Invoke(t, 0, "getReputationScore", reviewer.ScriptHash())
}

func TestGetAllUsers(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.reputation

	s, err := c.TestInvoke(t, "getAllUsers")
	require.NoError(t, err)
	require.Len(t, s.Pop().Array(), 0)

	organizer := newStakedAccount(t, inv)
	id := addTestEvent(t, inv, organizer, 10, 500)

	buyer := inv.event.NewAccount(t)
	inv.event.WithSigners(buyer).Invoke(t, 500, "buyTickets", id, buyer.ScriptHash(), int64(1))

	expected := [][]byte{organizer.ScriptHash().BytesBE(), buyer.ScriptHash().BytesBE()}
	sort.Slice(expected, func(i, j int) bool { return bytes.Compare(expected[i], expected[j]) < 0 })

	s, err = c.TestInvoke(t, "getAllUsers")
	require.NoError(t, err)

	users := s.Pop().Array()
	require.Len(t, users, 2)
	for i := range users {
		require.Equal(t, expected[i], bytesValue(t, users[i]))
	}
}

func TestRankAll(t *testing.T) {
	inv := newBookItInvokers(t,
		accountconst.ActivityThresholdKey, int64(25),
		accountconst.FreshAccountCountKey, int64(2))
	c := inv.reputation

	c.InvokeFail(t, reputationconst.ErrUnknownFilter, "rankAll", "best", "score")
	c.InvokeFail(t, reputationconst.ErrUnknownOrder, "rankAll", "all", "alphabetic")

	require.Len(t, rankAllRows(t, c, "all", "score"), 0)

	orgA := newStakedAccount(t, inv)
	orgB := newStakedAccount(t, inv)
	id := addTestEvent(t, inv, orgA, 10, 500)
	addTestEvent(t, inv, orgA, 5, 0)
	addTestEvent(t, inv, orgB, 5, 0)

	buyer := inv.event.NewAccount(t)
	inv.event.WithSigners(buyer).Invoke(t, 500, "buyTickets", id, buyer.ScriptHash(), int64(1))

	scoreA := int64(2 * accountconst.DefaultScoreOrganizedWeight) // 40
	scoreB := int64(accountconst.DefaultScoreOrganizedWeight)     // 20
	scoreC := int64(accountconst.DefaultScoreTicketsWeight)       // 5

	rows := rankAllRows(t, c, "all", "score")
	require.Equal(t, []rankRow{
		{orgA.ScriptHash().BytesBE(), scoreA, 1, 100},
		{orgB.ScriptHash().BytesBE(), scoreB, 2, 67},
		{buyer.ScriptHash().BytesBE(), scoreC, 3, 33},
	}, rows)

	// percentile ordering matches the canonical one
	require.Equal(t, rows, rankAllRows(t, c, "all", "percentile"))

	asc := rankAllRows(t, c, "all", "scoreAsc")
	require.Equal(t, []rankRow{rows[2], rows[1], rows[0]}, asc)

	// last writer first
	recent := rankAllRows(t, c, "all", "recent")
	require.Equal(t, []rankRow{rows[2], rows[1], rows[0]}, recent)

	top := rankAllRows(t, c, "top", "score")
	require.Equal(t, []rankRow{rows[0]}, top)

	active := rankAllRows(t, c, "active", "score")
	require.Equal(t, []rankRow{rows[0]}, active)

	fresh := rankAllRows(t, c, "new", "score")
	require.Equal(t, []rankRow{rows[1], rows[2]}, fresh)
}

func TestRankAllTieBreak(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.reputation

	orgA := newStakedAccount(t, inv)
	orgB := newStakedAccount(t, inv)
	addTestEvent(t, inv, orgA, 10, 500)
	addTestEvent(t, inv, orgB, 10, 500)

	expected := [][]byte{orgA.ScriptHash().BytesBE(), orgB.ScriptHash().BytesBE()}
	sort.Slice(expected, func(i, j int) bool { return bytes.Compare(expected[i], expected[j]) < 0 })

	rows := rankAllRows(t, c, "all", "score")
	require.Len(t, rows, 2)
	require.Equal(t, expected[0], rows[0].addr)
	require.Equal(t, expected[1], rows[1].addr)
	require.Equal(t, rows[0].score, rows[1].score)
	require.Equal(t, int64(1), rows[0].rank)
	require.Equal(t, int64(2), rows[1].rank)
}
