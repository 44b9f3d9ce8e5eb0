/*
Package account contains implementation of Account contract deployed in BookIt
chain.

Account contract keeps the stake registry of the platform: an address deposits
a fixed one-time collateral and thereby unlocks event creation in the Event
contract. The stake amount is recorded exactly once and never decreases. The
contract also stores the platform runtime configuration (stake price,
reputation scoring weights and ranking thresholds) consumed by the other
BookIt contracts.

# Contract notifications

Staked notification. This notification is produced when an address deposits
its collateral.

	Staked:
	  - name: address
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package account

/*
Contract storage model.

# Summary
Current conventions:
 <addr>: 20-byte NEO account script hash

Key-value storage format:
 - 's<addr>' -> int
   staked amount of the address in wei; absence of the key means the address
   has never staked
 - 'config<name>' -> []byte
   BookIt platform configuration value by name

# Staking
Stake is a one-time gate: a recorded amount is immutable, repeated staking
attempts fail. There is no unstake path.

# Configuration
Configuration records are filled from deploy arguments and may be changed
later by the committee only.
*/
