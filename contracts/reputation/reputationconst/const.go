package reputationconst

const (
	// Filter options of the RankAll method.
	FilterAll    = "all"
	FilterTop    = "top"
	FilterActive = "active"
	FilterNew    = "new"

	// Sort options of the RankAll method.
	OrderScore      = "score"
	OrderScoreAsc   = "scoreAsc"
	OrderPercentile = "percentile"
	OrderRecent     = "recent"

	// TopPercentile is the minimum percentile kept by the FilterTop option.
	TopPercentile = 90

	// ErrUnknownFilter is thrown by RankAll on a filter option outside the
	// enumerated set.
	ErrUnknownFilter = "unknown filter option"
	// ErrUnknownOrder is thrown by RankAll on a sort option outside the
	// enumerated set.
	ErrUnknownOrder = "unknown sort option"
	// ErrForbiddenSource is thrown when an activity update comes from
	// anything but the event or review contract.
	ErrForbiddenSource = "activity source is not authorized"
)
