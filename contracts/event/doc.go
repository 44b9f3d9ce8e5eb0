/*
Package event contains implementation of Event contract deployed in BookIt
chain.

Event contract is the ticketing ledger of the platform. It lists events
created by staked organizers (the stake gate is checked in the Account
contract) and sells tickets against each event's fixed capacity. A purchase
is a single atomic transition: capacity is checked and decremented in one
step, so concurrent buyers racing for the last seats can never oversell an
event. Per-buyer holdings accumulate quantity and the total amount paid.
Organizer and buyer activity is fed into the Reputation contract.

# Contract notifications

EventAdded notification. This notification is produced when a staked
organizer lists a new event.

	EventAdded:
	  - name: id
	    type: Integer
	  - name: organizer
	    type: Hash160
	  - name: capacityTotal
	    type: Integer
	  - name: priceWei
	    type: Integer

TicketsPurchased notification. This notification is produced when a buyer
successfully purchases tickets.

	TicketsPurchased:
	  - name: eventId
	    type: Integer
	  - name: buyer
	    type: Hash160
	  - name: quantity
	    type: Integer
	  - name: totalPaidWei
	    type: Integer
*/
package event

/*
Contract storage model.

# Summary
Current conventions:
 <id>: event identifier, integer serialized by the VM
 <addr>: 20-byte NEO account script hash

Key-value storage format:
 - 'accountScriptHash' -> interop.Hash160
   Account contract reference
 - 'reputationScriptHash' -> interop.Hash160
   Reputation contract reference
 - 'eventCounter' -> int
   identifier of the latest created event; identifiers are dense, so it also
   is the number of events
 - 'e<id>' -> std.Serialize(Event)
   event descriptor
 - 'h<addr><id>' -> std.Serialize(Holding)
   cumulative ticket holding of the buyer for the event; buyer comes first in
   the key so all holdings of one buyer form a single storage range

# Events
Events are never deleted and only CapacityRemaining of the descriptor ever
changes. The sum of holding quantities of an event always equals
CapacityTotal-CapacityRemaining.

# Holdings
A holding is created on the first purchase and incremented on subsequent
ones. There is no transfer or refund path.
*/
