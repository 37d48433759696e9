package eds

import (
	"errors"
	"fmt"
)

// The ways a run can fail. None of them can be recovered from part way
// through, so callers stop and write nothing.
var (
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrPlacementInfeasible = errors.New("placement infeasible")
	ErrAlphabetExhaustion  = errors.New("alphabet exhausted")
)

// InfeasibleError says how far placement got before the retry budget
// ran out. errors.Is(err, ErrPlacementInfeasible) is true for it.
type InfeasibleError struct {
	Want     int // regions asked for
	Got      int // regions accepted
	Attempts int
	NTried   int // distinct start positions tried
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%v: placed %d of %d regions after %d attempts (%d distinct starts tried)",
		ErrPlacementInfeasible, e.Got, e.Want, e.Attempts, e.NTried)
}

func (e *InfeasibleError) Unwrap() error { return ErrPlacementInfeasible }
