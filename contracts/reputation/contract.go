package reputation

import (
	"github.com/dhananjaypai08/bookit-contract/common"
	"github.com/dhananjaypai08/bookit-contract/contracts/account/accountconst"
	"github.com/dhananjaypai08/bookit-contract/contracts/reputation/reputationconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Activity is the raw per-address activity record the score is derived
	// from. It is updated by the Event and Review contracts only.
	Activity struct {
		Address          interop.Hash160
		EventsOrganized  int
		TicketsPurchased int
		StarsSum         int
		StarsCount       int
		FirstSeen        int
		LastActive       int
	}

	// AccountRank is one row of the ranked reputation view. Rank is 1-based,
	// Percentile is within [0, 100] and the top account always has 100.
	AccountRank struct {
		Address    interop.Hash160
		Score      int
		Rank       int
		Percentile int
		LastActive int
	}
)

const (
	accountContractKey = "accountScriptHash"
	eventContractKey   = "eventScriptHash"
	reviewContractKey  = "reviewScriptHash"

	activityPrefix = 'a'
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

	addrEvent := args[1].(interop.Hash160)
	if len(addrEvent) != interop.Hash160Len {
		panic("invalid event contract address")
	}

	addrReview := args[2].(interop.Hash160)
	if len(addrReview) != interop.Hash160Len {
		panic("invalid review contract address")
	}

	storage.Put(ctx, accountContractKey, addrAccount)
	storage.Put(ctx, eventContractKey, addrEvent)
	storage.Put(ctx, reviewContractKey, addrReview)

	runtime.Log("reputation contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("reputation contract updated")
}

// AddOrganizedEvent increments the organized event counter of the address.
// It can be invoked only by the Event contract.
func AddOrganizedEvent(organizer interop.Hash160) {
	ctx := storage.GetContext()

	requireCaller(ctx, eventContractKey)

	a := getActivity(ctx, organizer)
	a.EventsOrganized += 1
	putActivity(ctx, a)
}

// AddPurchasedTickets adds the purchased quantity to the buyer's counter.
// It can be invoked only by the Event contract.
func AddPurchasedTickets(buyer interop.Hash160, quantity int) {
	ctx := storage.GetContext()

	requireCaller(ctx, eventContractKey)

	if quantity <= 0 {
		panic("non-positive ticket quantity")
	}

	a := getActivity(ctx, buyer)
	a.TicketsPurchased += quantity
	putActivity(ctx, a)
}

// AddReceivedStars records a star rating received by an organizer of a
// reviewed event. It can be invoked only by the Review contract.
func AddReceivedStars(organizer interop.Hash160, stars int) {
	ctx := storage.GetContext()

	requireCaller(ctx, reviewContractKey)

	if stars <= 0 {
		panic("non-positive star rating")
	}

	a := getActivity(ctx, organizer)
	a.StarsSum += stars
	a.StarsCount += 1
	putActivity(ctx, a)
}

// GetReputationScore returns the derived reputation score of the address.
// The score is a deterministic function of the activity record: a weighted
// sum of organized events, the average received star rating (x10, rounded
// half up) and purchased tickets. Weights come from the Account contract
// configuration. An address with no recorded activity scores 0.
func GetReputationScore(addr interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, activityKey(addr))
	if data == nil {
		return 0
	}

	a := std.Deserialize(data.([]byte)).(Activity)
	accountContractAddr := storage.Get(ctx, accountContractKey).(interop.Hash160)

	return score(a,
		configInt(accountContractAddr, accountconst.ScoreOrganizedWeightKey, accountconst.DefaultScoreOrganizedWeight),
		configInt(accountContractAddr, accountconst.ScoreStarsWeightKey, accountconst.DefaultScoreStarsWeight),
		configInt(accountContractAddr, accountconst.ScoreTicketsWeightKey, accountconst.DefaultScoreTicketsWeight))
}

// GetAllUsers returns every address with recorded activity, in ascending
// address order.
func GetAllUsers() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	users := []interop.Hash160{}

	it := storage.Find(ctx, []byte{activityPrefix}, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		users = append(users, iterator.Value(it).(interop.Hash160))
	}

	return users
}

// RankAll returns the ranked reputation view. The canonical ranking is score
// descending with ties broken by ascending address bytes; rank is the
// 1-based position in it and percentile is round(((n-i)/n)*100) for the
// 0-based position i among n ranked addresses. Filter and order options are
// pure post-processing of this one canonical ranking: scores, ranks and
// percentiles are computed once and never differently per view.
//
// Filter is one of "all", "top" (percentile 90 and above), "active" (score
// above the ActivityThreshold configuration value) and "new" (the
// FreshAccountCount bottom-ranked addresses). Order is one of "score"
// (canonical), "scoreAsc" (canonical reversed), "percentile" (same order as
// canonical) and "recent" (last-active time descending).
func RankAll(filter, order string) []AccountRank {
	if filter != reputationconst.FilterAll && filter != reputationconst.FilterTop &&
		filter != reputationconst.FilterActive && filter != reputationconst.FilterNew {
		panic(reputationconst.ErrUnknownFilter)
	}
	if order != reputationconst.OrderScore && order != reputationconst.OrderScoreAsc &&
		order != reputationconst.OrderPercentile && order != reputationconst.OrderRecent {
		panic(reputationconst.ErrUnknownOrder)
	}

	ctx := storage.GetReadOnlyContext()
	accountContractAddr := storage.Get(ctx, accountContractKey).(interop.Hash160)

	ranks := rankCanonical(ctx, accountContractAddr)
	ranks = filterRanks(ranks, filter, accountContractAddr)

	return orderRanks(ranks, order)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func rankCanonical(ctx storage.Context, accountContractAddr interop.Hash160) []AccountRank {
	w1 := configInt(accountContractAddr, accountconst.ScoreOrganizedWeightKey, accountconst.DefaultScoreOrganizedWeight)
	w2 := configInt(accountContractAddr, accountconst.ScoreStarsWeightKey, accountconst.DefaultScoreStarsWeight)
	w3 := configInt(accountContractAddr, accountconst.ScoreTicketsWeightKey, accountconst.DefaultScoreTicketsWeight)

	ranks := []AccountRank{}

	it := storage.Find(ctx, []byte{activityPrefix}, storage.ValuesOnly)
	for iterator.Next(it) {
		a := std.Deserialize(iterator.Value(it).([]byte)).(Activity)
		r := AccountRank{
			Address:    a.Address,
			Score:      score(a, w1, w2, w3),
			LastActive: a.LastActive,
		}

		pos := len(ranks)
		for i := 0; i < len(ranks); i++ {
			if ranksBefore(r, ranks[i]) {
				pos = i
				break
			}
		}
		ranks = insertAt(ranks, pos, r)
	}

	n := len(ranks)
	for i := 0; i < n; i++ {
		ranks[i].Rank = i + 1
		// round half up of ((n-i)/n)*100
		ranks[i].Percentile = (200*(n-i) + n) / (2 * n)
	}

	return ranks
}

// ranksBefore reports whether a precedes b in the canonical ranking.
func ranksBefore(a, b AccountRank) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return common.CompareBytes(a.Address, b.Address) < 0
}

func filterRanks(ranks []AccountRank, filter string, accountContractAddr interop.Hash160) []AccountRank {
	switch filter {
	case reputationconst.FilterTop:
		kept := []AccountRank{}
		for i := 0; i < len(ranks); i++ {
			if ranks[i].Percentile >= reputationconst.TopPercentile {
				kept = append(kept, ranks[i])
			}
		}
		return kept
	case reputationconst.FilterActive:
		threshold := configInt(accountContractAddr, accountconst.ActivityThresholdKey, accountconst.DefaultActivityThreshold)

		kept := []AccountRank{}
		for i := 0; i < len(ranks); i++ {
			if ranks[i].Score > threshold {
				kept = append(kept, ranks[i])
			}
		}
		return kept
	case reputationconst.FilterNew:
		limit := configInt(accountContractAddr, accountconst.FreshAccountCountKey, accountconst.DefaultFreshAccountCount)
		if len(ranks) > limit {
			kept := []AccountRank{}
			for i := len(ranks) - limit; i < len(ranks); i++ {
				kept = append(kept, ranks[i])
			}
			return kept
		}
	}

	return ranks
}

func orderRanks(ranks []AccountRank, order string) []AccountRank {
	switch order {
	case reputationconst.OrderScoreAsc:
		reversed := []AccountRank{}
		for i := len(ranks) - 1; i >= 0; i-- {
			reversed = append(reversed, ranks[i])
		}
		return reversed
	case reputationconst.OrderRecent:
		recent := []AccountRank{}
		for i := 0; i < len(ranks); i++ {
			pos := len(recent)
			for j := 0; j < len(recent); j++ {
				if ranks[i].LastActive > recent[j].LastActive {
					pos = j
					break
				}
			}
			recent = insertAt(recent, pos, ranks[i])
		}
		return recent
	}

	// "score" and "percentile" are the canonical order already.
	return ranks
}

func insertAt(ranks []AccountRank, pos int, r AccountRank) []AccountRank {
	ranks = append(ranks, r)
	for i := len(ranks) - 1; i > pos; i-- {
		ranks[i] = ranks[i-1]
	}
	ranks[pos] = r

	return ranks
}

func score(a Activity, organizedWeight, starsWeight, ticketsWeight int) int {
	meanStarsX10 := 0
	if a.StarsCount > 0 {
		// round half up of (StarsSum/StarsCount)*10
		meanStarsX10 = (20*a.StarsSum + a.StarsCount) / (2 * a.StarsCount)
	}

	return organizedWeight*a.EventsOrganized + starsWeight*meanStarsX10 + ticketsWeight*a.TicketsPurchased
}

func configInt(accountContractAddr interop.Hash160, key string, def int) int {
	val := contract.Call(accountContractAddr, "config", contract.ReadOnly, key)
	if val == nil {
		return def
	}

	return val.(int)
}

func requireCaller(ctx storage.Context, key string) {
	expected := storage.Get(ctx, key).(interop.Hash160)
	if !runtime.GetCallingScriptHash().Equals(expected) {
		panic(reputationconst.ErrForbiddenSource)
	}
}

func getActivity(ctx storage.Context, addr interop.Hash160) Activity {
	if len(addr) != interop.Hash160Len {
		panic("invalid address")
	}

	now := runtime.GetTime()

	data := storage.Get(ctx, activityKey(addr))
	if data == nil {
		return Activity{
			Address:    addr,
			FirstSeen:  now,
			LastActive: now,
		}
	}

	a := std.Deserialize(data.([]byte)).(Activity)
	a.LastActive = now

	return a
}

func putActivity(ctx storage.Context, a Activity) {
	common.SetSerialized(ctx, activityKey(a.Address), a)
}

func activityKey(addr interop.Hash160) []byte {
	return append([]byte{activityPrefix}, addr...)
}
