package eventconst

const (
	// MaxPaymentWei bounds the total payment of a single event: ticket price
	// is capped at creation so that price multiplied by any sellable quantity
	// stays within this domain.
	MaxPaymentWei = 1 << 62

	// ErrNotFound is thrown when the referenced event was never created.
	ErrNotFound = "event does not exist"
	// ErrNotStaked is thrown on event creation by an address without a stake.
	ErrNotStaked = "organizer has no stake"
	// ErrZeroCapacity is thrown on event creation with no seats.
	ErrZeroCapacity = "zero event capacity"
	// ErrPriceRange is thrown when the ticket price would overflow the
	// payment domain at full capacity.
	ErrPriceRange = "ticket price out of range"
	// ErrZeroQuantity is thrown on a purchase of zero tickets.
	ErrZeroQuantity = "zero ticket quantity"
	// ErrSoldOut is thrown when the requested quantity exceeds the remaining
	// capacity. Purchases are all-or-nothing.
	ErrSoldOut = "not enough tickets left"
	// ErrPaymentOverflow is thrown when price multiplied by quantity would
	// overflow the payment domain.
	ErrPaymentOverflow = "payment amount overflow"
)
