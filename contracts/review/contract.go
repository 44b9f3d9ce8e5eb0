package review

import (
	"github.com/dhananjaypai08/bookit-contract/common"
	"github.com/dhananjaypai08/bookit-contract/contracts/event/eventconst"
	"github.com/dhananjaypai08/bookit-contract/contracts/review/reviewconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Review is an immutable attendee record: one star rating and one
	// comment per (event, reviewer) pair.
	Review struct {
		EventID   int
		Reviewer  interop.Hash160
		Comment   string
		Timestamp int
		Stars     int
	}

	// EventReviews groups all reviews of one event with their integer
	// average star rating.
	EventReviews struct {
		Reviews      []Review
		AverageStars int
	}
)

const (
	eventContractKey      = "eventScriptHash"
	reputationContractKey = "reputationScriptHash"

	reviewPrefix = 'r'

	// eventIDSize is the fixed width of the event identifier inside review
	// keys. Identifiers must be fixed-width so that the storage range of one
	// event never overlaps another.
	eventIDSize = 8
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

	addrEvent := args[0].(interop.Hash160)
	if len(addrEvent) != interop.Hash160Len {
		panic("invalid event contract address")
	}

	addrReputation := args[1].(interop.Hash160)
	if len(addrReputation) != interop.Hash160Len {
		panic("invalid reputation contract address")
	}

	storage.Put(ctx, eventContractKey, addrEvent)
	storage.Put(ctx, reputationContractKey, addrReputation)

	runtime.Log("review contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("review contract updated")
}

// GiveReview appends an immutable review of the event. A reviewer can review
// an event exactly once, stars are limited to [1, 5] and the event must
// exist. Timestamp is caller-supplied and stored as is. Received stars are
// fed into the organizer's record in the Reputation contract. It can be
// invoked only by the reviewer.
//
// It produces ReviewAdded notification.
func GiveReview(eventID int, reviewer interop.Hash160, comment string, timestamp, stars int) {
	ctx := storage.GetContext()

	if len(reviewer) != interop.Hash160Len {
		panic("invalid reviewer address")
	}
	common.CheckOwnerWitness(reviewer)

	eventContractAddr := storage.Get(ctx, eventContractKey).(interop.Hash160)
	requireEvent(eventContractAddr, eventID)

	if stars < reviewconst.MinStars || stars > reviewconst.MaxStars {
		panic(reviewconst.ErrStarsRange)
	}

	key := reviewKey(eventID, reviewer)
	if storage.Get(ctx, key) != nil {
		panic(reviewconst.ErrDuplicate)
	}

	common.SetSerialized(ctx, key, Review{
		EventID:   eventID,
		Reviewer:  reviewer,
		Comment:   comment,
		Timestamp: timestamp,
		Stars:     stars,
	})

	organizer := contract.Call(eventContractAddr, "organizer", contract.ReadOnly, eventID).(interop.Hash160)
	reputationContractAddr := storage.Get(ctx, reputationContractKey).(interop.Hash160)
	contract.Call(reputationContractAddr, "addReceivedStars", contract.All, organizer, stars)

	runtime.Log("review added")
	runtime.Notify("ReviewAdded", eventID, reviewer, stars)
}

// GetAllReview returns all reviews of the event together with their average
// star rating rounded half up. The average is 0 when the event has no
// reviews. Reviews are ordered by reviewer address.
//
// If the event doesn't exist, it panics with event contract's ErrNotFound.
func GetAllReview(eventID int) EventReviews {
	ctx := storage.GetReadOnlyContext()

	eventContractAddr := storage.Get(ctx, eventContractKey).(interop.Hash160)
	requireEvent(eventContractAddr, eventID)

	var (
		reviews  = []Review{}
		starsSum int
	)

	it := storage.Find(ctx, eventReviewsPrefix(eventID), storage.ValuesOnly)
	for iterator.Next(it) {
		r := std.Deserialize(iterator.Value(it).([]byte)).(Review)
		reviews = append(reviews, r)
		starsSum += r.Stars
	}

	average := 0
	if len(reviews) > 0 {
		// round half up
		average = (2*starsSum + len(reviews)) / (2 * len(reviews))
	}

	return EventReviews{
		Reviews:      reviews,
		AverageStars: average,
	}
}

// CountOf returns the number of reviews of the event.
//
// If the event doesn't exist, it panics with event contract's ErrNotFound.
func CountOf(eventID int) int {
	ctx := storage.GetReadOnlyContext()

	eventContractAddr := storage.Get(ctx, eventContractKey).(interop.Hash160)
	requireEvent(eventContractAddr, eventID)

	count := 0
	it := storage.Find(ctx, eventReviewsPrefix(eventID), storage.KeysOnly)
	for iterator.Next(it) {
		count++
	}

	return count
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func requireEvent(eventContractAddr interop.Hash160, eventID int) {
	count := contract.Call(eventContractAddr, "count", contract.ReadOnly).(int)
	if eventID < 1 || eventID > count {
		panic(eventconst.ErrNotFound)
	}
}

func eventReviewsPrefix(eventID int) []byte {
	prefix := []byte{reviewPrefix}

	for i := 0; i < eventIDSize; i++ {
		prefix = append(prefix, byte(eventID%256))
		eventID /= 256
	}

	return prefix
}

func reviewKey(eventID int, reviewer interop.Hash160) []byte {
	return append(eventReviewsPrefix(eventID), reviewer...)
}
