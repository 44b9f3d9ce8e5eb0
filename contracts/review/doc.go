/*
Package review contains implementation of Review contract deployed in BookIt
chain.

Review contract is the append-only review store of the platform: an attendee
posts one star rating and one comment per event. Records are immutable, there
is no edit or delete path. The contract checks event existence against the
Event contract and feeds received stars into the organizer's record in the
Reputation contract.

# Contract notifications

ReviewAdded notification. This notification is produced when an attendee
posts a review.

	ReviewAdded:
	  - name: eventId
	    type: Integer
	  - name: reviewer
	    type: Hash160
	  - name: stars
	    type: Integer
*/
package review

/*
Contract storage model.

# Summary
Current conventions:
 <id>: 8-byte little-endian event identifier
 <addr>: 20-byte NEO account script hash

Key-value storage format:
 - 'eventScriptHash' -> interop.Hash160
   Event contract reference
 - 'reputationScriptHash' -> interop.Hash160
   Reputation contract reference
 - 'r<id><addr>' -> std.Serialize(Review)
   review of the event by the reviewer; presence of the key is also the
   one-review-per-attendee guard

# Reviews
The event identifier is padded to a fixed width inside keys so that all
reviews of one event form a single storage range and ranges of different
events never overlap. The average star rating is recomputed on read, nothing
derived is stored.
*/
