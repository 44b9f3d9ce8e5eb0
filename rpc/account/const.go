package account

import (
	"github.com/dhananjaypai08/bookit-contract/contracts/account/accountconst"
)

const (
	// StakePriceKey is a key in account config which contains the exact
	// collateral amount required to stake.
	StakePriceKey = accountconst.StakePriceKey
	// ActivityThresholdKey is a key in account config which contains the
	// minimum score above which an account is considered active.
	ActivityThresholdKey = accountconst.ActivityThresholdKey
	// FreshAccountCountKey is a key in account config which contains the
	// size of the "new" ranking view.
	FreshAccountCountKey = accountconst.FreshAccountCountKey

	// ErrAlreadyStaked is returned on an attempt to stake twice.
	ErrAlreadyStaked = accountconst.ErrAlreadyStaked
	// ErrStakeAmount is returned when the staked amount differs from StakePrice.
	ErrStakeAmount = accountconst.ErrStakeAmount
)
