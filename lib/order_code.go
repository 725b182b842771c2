package lib

import (
	"fmt"
)

// lettersSpan is how many numeric codes each letter triad covers before
// rolling over (AAA00001..AAA99999, then AAB00001).
const lettersSpan = 99999

// RenderOrderCode derives the public order code for a counter value.
// The mapping is a pure function of the sequence number:
//
//	0     -> PRNTDT-AAA00001
//	1     -> PRNTDT-AAA00002
//	99999 -> PRNTDT-AAB00001
func RenderOrderCode(counter int64) string {
	lettersIndex := counter / lettersSpan
	numberPart := counter%lettersSpan + 1

	// Render the triad base-26, most-significant letter first
	letters := [3]byte{}
	for i := 2; i >= 0; i-- {
		letters[i] = byte('A' + lettersIndex%26)
		lettersIndex /= 26
	}

	return fmt.Sprintf("PRNTDT-%s%05d", letters, numberPart)
}
