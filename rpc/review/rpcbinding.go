// Package review contains RPC wrappers for BookIt Review contract.
package review

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Review is a contract-specific review.Review type used by its methods.
type Review struct {
	EventID   *big.Int
	Reviewer  util.Uint160
	Comment   string
	Timestamp *big.Int
	Stars     *big.Int
}

// EventReviews is a contract-specific review.EventReviews type used by its methods.
type EventReviews struct {
	Reviews      []*Review
	AverageStars *big.Int
}

// ReviewAddedEvent represents "ReviewAdded" event emitted by the contract.
type ReviewAddedEvent struct {
	EventID  *big.Int
	Reviewer util.Uint160
	Stars    *big.Int
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

// CountOf invokes `countOf` method of contract.
func (c *ContractReader) CountOf(eventID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "countOf", eventID))
}

// GetAllReview invokes `getAllReview` method of contract.
func (c *ContractReader) GetAllReview(eventID *big.Int) (*EventReviews, error) {
	return itemToEventReviews(unwrap.Item(c.invoker.Call(c.hash, "getAllReview", eventID)))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// GiveReview creates a transaction invoking `giveReview` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GiveReview(eventID *big.Int, reviewer util.Uint160, comment string, timestamp *big.Int, stars *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "giveReview", eventID, reviewer, comment, timestamp, stars)
}

// GiveReviewTransaction creates a transaction invoking `giveReview` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GiveReviewTransaction(eventID *big.Int, reviewer util.Uint160, comment string, timestamp *big.Int, stars *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "giveReview", eventID, reviewer, comment, timestamp, stars)
}

// GiveReviewUnsigned creates a transaction invoking `giveReview` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GiveReviewUnsigned(eventID *big.Int, reviewer util.Uint160, comment string, timestamp *big.Int, stars *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "giveReview", nil, eventID, reviewer, comment, timestamp, stars)
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

// itemToReview converts stack item into *Review.
func itemToReview(item stackitem.Item, err error) (*Review, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Review)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Review from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Review) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	res.EventID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field EventID: %w", err)
	}

	res.Reviewer, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		return util.Uint160DecodeBytesBE(b)
	}(arr[1])
	if err != nil {
		return fmt.Errorf("field Reviewer: %w", err)
	}

	res.Comment, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[2])
	if err != nil {
		return fmt.Errorf("field Comment: %w", err)
	}

	res.Timestamp, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	res.Stars, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field Stars: %w", err)
	}

	return nil
}

// itemToEventReviews converts stack item into *EventReviews.
func itemToEventReviews(item stackitem.Item, err error) (*EventReviews, error) {
	if err != nil {
		return nil, err
	}
	var res = new(EventReviews)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of EventReviews from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *EventReviews) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	res.Reviews, err = func(item stackitem.Item) ([]*Review, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*Review, len(arr))
		for i := range res {
			res[i], err = itemToReview(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	}(arr[0])
	if err != nil {
		return fmt.Errorf("field Reviews: %w", err)
	}

	res.AverageStars, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field AverageStars: %w", err)
	}

	return nil
}

// ReviewAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReviewAdded" name from the provided [result.ApplicationLog].
func ReviewAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReviewAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReviewAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReviewAdded" {
				continue
			}
			event := new(ReviewAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReviewAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReviewAddedEvent or
// returns an error if it's not possible to do to so.
func (e *ReviewAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.EventID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field EventID: %w", err)
	}

	e.Reviewer, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		return util.Uint160DecodeBytesBE(b)
	}(arr[1])
	if err != nil {
		return fmt.Errorf("field Reviewer: %w", err)
	}

	e.Stars, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Stars: %w", err)
	}

	return nil
}
