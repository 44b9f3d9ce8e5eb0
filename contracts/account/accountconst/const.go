package accountconst

const (
	// StakePriceKey is a key in account config which contains the exact
	// collateral amount (in wei) required to unlock event creation.
	StakePriceKey = "StakePrice"
	// ScoreOrganizedWeightKey is a key in account config which contains the
	// reputation weight of one organized event.
	ScoreOrganizedWeightKey = "ScoreOrganizedWeight"
	// ScoreStarsWeightKey is a key in account config which contains the
	// reputation weight of the average received star rating (x10).
	ScoreStarsWeightKey = "ScoreStarsWeight"
	// ScoreTicketsWeightKey is a key in account config which contains the
	// reputation weight of one purchased ticket.
	ScoreTicketsWeightKey = "ScoreTicketsWeight"
	// ActivityThresholdKey is a key in account config which contains the
	// minimum score above which an account is considered active.
	ActivityThresholdKey = "ActivityThreshold"
	// FreshAccountCountKey is a key in account config which contains the
	// number of bottom-ranked accounts returned by the "new" ranking filter.
	FreshAccountCountKey = "FreshAccountCount"

	// DefaultStakePrice is 0.2 tokens in wei.
	DefaultStakePrice = 200_000_000_000_000_000

	DefaultScoreOrganizedWeight = 20
	DefaultScoreStarsWeight     = 1
	DefaultScoreTicketsWeight   = 5
	DefaultActivityThreshold    = 50
	DefaultFreshAccountCount    = 10

	// ErrAlreadyStaked is thrown on an attempt to stake twice from one address.
	ErrAlreadyStaked = "already staked"
	// ErrStakeAmount is thrown when the staked amount differs from StakePrice.
	ErrStakeAmount = "wrong stake amount"
)
