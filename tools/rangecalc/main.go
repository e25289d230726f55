package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/dpithon/set/packages/valuerange"
)

var (
	firstLower          = flag.Float64("first-lower", 0, "lower bound value of the first range")
	firstLowerOpen      = flag.Bool("first-lower-open", false, "exclude the lower bound value of the first range")
	firstUnboundedBelow = flag.Bool("first-unbounded-below", false, "extend the first range to -∞")
	firstUpper          = flag.Float64("first-upper", 0, "upper bound value of the first range")
	firstUpperOpen      = flag.Bool("first-upper-open", false, "exclude the upper bound value of the first range")
	firstUnboundedAbove = flag.Bool("first-unbounded-above", false, "extend the first range to +∞")

	secondLower          = flag.Float64("second-lower", 0, "lower bound value of the second range")
	secondLowerOpen      = flag.Bool("second-lower-open", false, "exclude the lower bound value of the second range")
	secondUnboundedBelow = flag.Bool("second-unbounded-below", false, "extend the second range to -∞")
	secondUpper          = flag.Float64("second-upper", 0, "upper bound value of the second range")
	secondUpperOpen      = flag.Bool("second-upper-open", false, "exclude the upper bound value of the second range")
	secondUnboundedAbove = flag.Bool("second-unbounded-above", false, "extend the second range to +∞")
)

func main() {
	flag.Parse()

	first, err := valuerange.New(
		endPoint(*firstLower, *firstLowerOpen, *firstUnboundedBelow),
		endPoint(*firstUpper, *firstUpperOpen, *firstUnboundedAbove),
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	second, err := valuerange.New(
		endPoint(*secondLower, *secondLowerOpen, *secondUnboundedBelow),
		endPoint(*secondUpper, *secondUpperOpen, *secondUnboundedAbove),
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("first:   ", first)
	fmt.Println("second:  ", second)
	fmt.Println("overlaps:", first.Overlaps(second))

	if left, right, disjoint := first.Union(second); disjoint {
		fmt.Println("union:   ", left, "and", right)
	} else {
		fmt.Println("union:   ", left)
	}
}

func endPoint(value float64, open bool, unbounded bool) valuerange.EndPoint {
	switch {
	case unbounded:
		return valuerange.Unbound()
	case open:
		return valuerange.Open(value)
	default:
		return valuerange.Closed(value)
	}
}
