package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// InvalidSliceError is the panic value of BuildSBTree when safe==true and the
// given items break the strictly-ascending-unique-keys condition. Less and
// More are an offending pair: Less appears before More in the slice but isn't
// strictly smaller.
type InvalidSliceError[K constraints.Ordered] struct {
	Less, More K
}

func (e InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("Trees: slice not in strictly ascending key order: %v precedes %v", e.Less, e.More)
}
