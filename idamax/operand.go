package idamax

import "fmt"

// Location tells where an Operand's data lives.
type Location uint8

const (
	// Host data is an ordinary Go slice; the kernel reads it in place.
	Host Location = iota

	// Linear data lives in the Module's memory at a byte pointer.
	Linear
)

// String returns the location name.
func (l Location) String() string {
	switch l {
	case Host:
		return "host"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Location(%d)", uint8(l))
	}
}

// Operand is the vector argument of Reduce, tagged by location.
type Operand struct {
	loc  Location
	host []float64
	ptr  int32
}

// HostOperand wraps a host slice.
func HostOperand(x []float64) Operand {
	return Operand{loc: Host, host: x}
}

// LinearOperand refers to a vector whose element 0 is at byte ptr of the
// Module's memory.
func LinearOperand(ptr int32) Operand {
	return Operand{loc: Linear, ptr: ptr}
}

// Location returns where the operand lives.
func (o Operand) Location() Location { return o.loc }

// Reduce runs the reduction over (n, x, stride, offset). Host operands are
// scanned in place and need no initialization; linear operands go through
// the bound entry point. Unlike Ndarray, a host view running past the slice
// is reported as ErrRange instead of panicking.
func (m *Module) Reduce(n int, x Operand, stride, offset int) (int, error) {
	switch x.loc {
	case Host:
		if n < 1 {
			return -1, nil
		}
		if n > 1 {
			lo, hi, err := span(n, stride, offset)
			if err != nil {
				return -1, err
			}
			if lo < 0 || hi >= int64(len(x.host)) {
				return -1, fmt.Errorf("%w: view [%d, %d] outside %d host elements", ErrRange, lo, hi, len(x.host))
			}
		}
		return Ndarray(n, x.host, stride, offset), nil
	case Linear:
		return m.call(n, int(x.ptr), stride, offset)
	default:
		return -1, fmt.Errorf("idamax: unknown operand location %v", x.loc)
	}
}
