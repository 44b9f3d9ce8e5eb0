package reviewconst

const (
	// MinStars and MaxStars bound the star rating of a review.
	MinStars = 1
	MaxStars = 5

	// ErrStarsRange is thrown when the star rating is outside [MinStars, MaxStars].
	ErrStarsRange = "star rating out of range"
	// ErrDuplicate is thrown on a second review of one event by one reviewer.
	ErrDuplicate = "event already reviewed"
)
