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
	"github.com/jetsetilly/splitrom/curated"
)

// OddLength is returned by Split() when the image has an odd number of bytes
// and the OddPolicy is OddError. The placeholder value is the trailing byte.
const OddLength = "byteplane: odd number of bytes in image: last byte is 0x%02x"

// PlaneMismatch is returned by Interleave() when the length of the two planes
// differs by more than one byte.
const PlaneMismatch = "byteplane: plane lengths cannot be interleaved: upper %d bytes, lower %d bytes"

// OddByte records the trailing byte of an image with an odd number of bytes.
type OddByte struct {
	Present bool
	Value   uint8

	// how the byte was handled. never OddError because an image split with
	// that policy results in an error
	Policy OddPolicy
}

// Planes is the result of a successful Split().
type Planes struct {
	Upper []byte
	Lower []byte

	// the number of complete 16-bit words in the image
	Words int

	Order Order
	Odd   OddByte
}

// Split the image into upper and lower planes. The image is not modified and
// the planes do not share memory with it.
//
// An image with an odd number of bytes is handled according to the policy. A
// policy of OddError results in the OddLength error and no planes.
func Split(image []byte, order Order, policy OddPolicy) (Planes, error) {
	words := len(image) / 2

	p := Planes{
		Words: words,
		Order: order,
	}

	if len(image)%2 == 1 {
		p.Odd = OddByte{
			Present: true,
			Value:   image[len(image)-1],
			Policy:  policy,
		}

		switch policy {
		case OddSkip, OddLower, OddUpper:
		default:
			return Planes{}, curated.Errorf(OddLength, p.Odd.Value)
		}
	}

	// allocate one extra byte so that an appended odd byte does not cause a
	// reallocation
	p.Upper = make([]byte, words, words+1)
	p.Lower = make([]byte, words, words+1)

	first, second := p.Upper, p.Lower
	if order == LittleEndian {
		first, second = p.Lower, p.Upper
	}

	for i := 0; i < words; i++ {
		first[i] = image[i*2]
		second[i] = image[i*2+1]
	}

	if p.Odd.Present {
		switch policy {
		case OddLower:
			p.Lower = append(p.Lower, p.Odd.Value)
		case OddUpper:
			p.Upper = append(p.Upper, p.Odd.Value)
		}
	}

	return p, nil
}

// Interleave is the reverse of Split(). The planes can differ in length by at
// most one byte, in which case the extra byte of the longer plane is the last
// byte of the image.
func Interleave(upper []byte, lower []byte, order Order) ([]byte, error) {
	words := min(len(upper), len(lower))
	if len(upper)-words > 1 || len(lower)-words > 1 {
		return nil, curated.Errorf(PlaneMismatch, len(upper), len(lower))
	}

	first, second := upper, lower
	if order == LittleEndian {
		first, second = lower, upper
	}

	image := make([]byte, 0, len(upper)+len(lower))
	for i := 0; i < words; i++ {
		image = append(image, first[i], second[i])
	}

	if len(upper) > words {
		image = append(image, upper[words])
	} else if len(lower) > words {
		image = append(image, lower[words])
	}

	return image, nil
}
