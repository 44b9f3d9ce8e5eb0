/*
Package reputation contains implementation of Reputation contract deployed in
BookIt chain.

Reputation contract derives an integer score per address from platform
activity: events organized, tickets purchased and star ratings received for
own events. Raw activity counters are fed by the Event and Review contracts
on every mutating transition; scores, ranks and percentiles are recomputed
from those counters on every query, nothing derived is persisted. The ranked
view supports the dashboard filters of the platform as pure post-processing
of one canonical ranking.

# Contract notifications

Reputation contract does not produce notifications to process.
*/
package reputation

/*
Contract storage model.

# Summary
Current conventions:
 <addr>: 20-byte NEO account script hash

Key-value storage format:
 - 'accountScriptHash' -> interop.Hash160
   Account contract reference (scoring weights and thresholds source)
 - 'eventScriptHash' -> interop.Hash160
   Event contract reference (authorized activity source)
 - 'reviewScriptHash' -> interop.Hash160
   Review contract reference (authorized activity source)
 - 'a<addr>' -> std.Serialize(Activity)
   raw activity counters of the address with first-seen and last-active
   block timestamps

# Scoring
Score is a weighted sum over a single activity record, total over all
addresses (0 without activity). Weights live in the Account contract
configuration so they can be tuned by the committee without redeployment.

# Ranking
The canonical ranking is recomputed per query: score descending, ties broken
by ascending address bytes. Every filter and sort option is a subsequence or
reordering of that one ranking.
*/
