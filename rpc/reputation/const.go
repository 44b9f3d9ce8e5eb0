package reputation

import (
	"github.com/dhananjaypai08/bookit-contract/contracts/reputation/reputationconst"
)

const (
	// FilterAll, FilterTop, FilterActive and FilterNew are the filter
	// options accepted by RankAll.
	FilterAll    = reputationconst.FilterAll
	FilterTop    = reputationconst.FilterTop
	FilterActive = reputationconst.FilterActive
	FilterNew    = reputationconst.FilterNew

	// OrderScore, OrderScoreAsc, OrderPercentile and OrderRecent are the
	// sort options accepted by RankAll.
	OrderScore      = reputationconst.OrderScore
	OrderScoreAsc   = reputationconst.OrderScoreAsc
	OrderPercentile = reputationconst.OrderPercentile
	OrderRecent     = reputationconst.OrderRecent
)
