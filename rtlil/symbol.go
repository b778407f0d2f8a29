package rtlil

import (
	"fmt"
	"strconv"
	"strings"
)

// symbolAndBit splits a wire symbol like "a[3]" into its bus name "a" and
// bit index 3. A symbol with no bracket is bit 0 of a single-bit bus.
func symbolAndBit(s string) (string, int) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return s, 0
	}

	name := s[:open]
	rest := s[open:]
	if rest[len(rest)-1] != ']' {
		panic(fmt.Sprintf("rtlil: symbol %q has an open bracket but no closing bracket", s))
	}

	bit, err := strconv.Atoi(rest[1 : len(rest)-1])
	if err != nil {
		panic(fmt.Sprintf("rtlil: symbol %q has a non-integer bit index", s))
	}

	return name, bit
}
