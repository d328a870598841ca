package filter

import (
	"fmt"
	"strconv"
)

// Range is an inclusive range of catalog ids.
type Range struct {
	Lower int
	Upper int
}

// Contains reports whether id lies within the range, bounds included.
func (r Range) Contains(id int) bool {
	return id >= r.Lower && id <= r.Upper
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lower, r.Upper)
}

// ParseRange extracts an inclusive range from a label such as
// "#0001 - #0151". Every non-digit character separates numbers; the first two
// numbers found become the bounds in either order. Labels with fewer than two
// numbers have no range.
func ParseRange(label string) (Range, bool) {
	numbers := make([]int, 0, 2)
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		if n, err := strconv.Atoi(label[start:end]); err == nil {
			numbers = append(numbers, n)
		}
		start = -1
	}

	for i := 0; i < len(label) && len(numbers) < 2; i++ {
		if label[i] >= '0' && label[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	if len(numbers) < 2 {
		flush(len(label))
	}

	if len(numbers) < 2 {
		return Range{}, false
	}
	return Range{
		Lower: min(numbers[0], numbers[1]),
		Upper: max(numbers[0], numbers[1]),
	}, true
}
