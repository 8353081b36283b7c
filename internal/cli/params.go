package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/spirograph/internal/spiro"
)

// sparamsArgs accepts the trailing "r l" of "--sparams R r l". Positional
// arguments are rejected when --sparams is not given.
func sparamsArgs(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("sparams") {
		return cobra.RangeArgs(0, 2)(cmd, args)
	}
	return cobra.NoArgs(cmd, args)
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("--sparams: %q is not a number", a)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// staticParams turns the --sparams values R, r, l into a black curve centered
// in the window. Radii are truncated to integers.
func staticParams(vals []float64) (spiro.Params, error) {
	if len(vals) != 3 {
		return spiro.Params{}, fmt.Errorf("--sparams takes exactly 3 values (R, r, l), got %d", len(vals))
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return spiro.Params{}, fmt.Errorf("--sparams: %w: values must be finite, got %g", spiro.ErrInvalidParameter, v)
		}
	}
	p := spiro.Params{
		Outer: int(vals[0]),
		Inner: int(vals[1]),
		L:     vals[2],
		Color: spiro.Black,
	}
	if p.Outer <= 0 || p.Inner <= 0 {
		return spiro.Params{}, fmt.Errorf("--sparams: %w: R and r must be positive integers, got R=%g r=%g", spiro.ErrInvalidParameter, vals[0], vals[1])
	}
	return p, nil
}
