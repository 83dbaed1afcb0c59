package bench

import (
	"errors"
	"fmt"
)

var ErrUnknownCase = errors.New("bench: unknown case")

// Case is one named entry point of the Suite.
type Case struct {
	Name        string
	Description string
	Run         func(*Suite)
	Baseline    bool
}

// Cases returns every entry point in declaration order. RefFloat32 is the
// baseline the others are compared to.
func Cases() []Case {
	return []Case{
		{Name: "RefFloat32", Description: "Distance via heap points, float32", Run: (*Suite).RefFloat32, Baseline: true},
		{Name: "RefFloat64", Description: "Distance via heap points, float64", Run: (*Suite).RefFloat64},
		{Name: "ValueFloat32", Description: "Distance via value points, float32", Run: (*Suite).ValueFloat32},
		{Name: "ValueFloat64", Description: "Distance via value points, float64", Run: (*Suite).ValueFloat64},
		{Name: "SquaredValueFloat32", Description: "Squared distance via value points, float32", Run: (*Suite).SquaredValueFloat32},
		{Name: "SquaredValueFloat64", Description: "Squared distance via value points, float64", Run: (*Suite).SquaredValueFloat64},
		{Name: "ValueFloat64FromFloat32", Description: "Distance via value points, float64 built from float32", Run: (*Suite).ValueFloat64FromFloat32},
	}
}

// Lookup returns the named cases in the order given. No names means all cases.
func Lookup(names ...string) ([]Case, error) {
	all := Cases()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Case, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}

	out := make([]Case, 0, len(names))
	for _, name := range names {
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCase, name)
		}
		out = append(out, c)
	}
	return out, nil
}
