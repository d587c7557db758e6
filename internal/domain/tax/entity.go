package tax

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bracket is one contiguous income slice of a tax year's progressive table.
// Min is inclusive, Max exclusive; the final bracket has a nil Max and is
// unbounded. Brackets for a year are non-overlapping and ordered by Min
// ascending.
type Bracket struct {
	ID        string
	Year      int
	Min       decimal.Decimal
	Max       *decimal.Decimal
	Rate      decimal.Decimal // marginal rate, 0..1
	CreatedAt time.Time
	UpdatedAt time.Time
}
