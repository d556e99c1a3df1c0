// This file is part of splitrom.
//
// splitrom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// splitrom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with splitrom.  If not, see <https://www.gnu.org/licenses/>.

package byteplane

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/splitrom/curated"
)

// Order is the byte order of the words in the image.
type Order int

// List of valid Order values.
const (
	// the first byte of each pair is the most significant. the byte order of
	// the Motorola 68000
	BigEndian Order = iota

	// the first byte of each pair is the least significant
	LittleEndian
)

func (o Order) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	}
	return fmt.Sprintf("unknown order (%d)", int(o))
}

// OddPolicy decides what happens to the trailing byte of an image with an odd
// number of bytes.
type OddPolicy int

// List of valid OddPolicy values.
const (
	// the image is not split
	OddError OddPolicy = iota

	// the trailing byte is dropped
	OddSkip

	// the trailing byte is appended to the lower plane
	OddLower

	// the trailing byte is appended to the upper plane
	OddUpper
)

// OddPolicies is the list of strings accepted by ParseOddPolicy(), in the
// order they should be presented to the user.
var OddPolicies = []string{"skip", "lower", "upper", "error"}

func (p OddPolicy) String() string {
	switch p {
	case OddError:
		return "error"
	case OddSkip:
		return "skip"
	case OddLower:
		return "lower"
	case OddUpper:
		return "upper"
	}
	return fmt.Sprintf("unknown policy (%d)", int(p))
}

// ParseOddPolicy converts the string to an OddPolicy value. The string should
// be one of the values in OddPolicies, case insensitive.
func ParseOddPolicy(s string) (OddPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return OddError, nil
	case "skip":
		return OddSkip, nil
	case "lower":
		return OddLower, nil
	case "upper":
		return OddUpper, nil
	}
	return OddError, curated.Errorf("byteplane: unrecognised odd byte policy: %s", s)
}
