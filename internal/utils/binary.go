package utils

import (
	"unicode/utf8"
)

// BinarySniffLength defines the maximum number of bytes read when detecting binary content.
const BinarySniffLength = 8192

// IsBinary reports whether the provided byte slice appears to contain binary data.
// A NUL byte or a UTF-8 encoding error marks the content as binary.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	for _, byteValue := range data {
		if byteValue == 0 {
			return true
		}
	}
	return !utf8.Valid(data)
}

// IsBinaryPrefix applies IsBinary to a sniff window cut from a larger file.
// When windowFull is true the window may end in the middle of a multi-byte
// rune; the incomplete tail is trimmed first so clean UTF-8 content crossing
// the window boundary is not misread as binary.
func IsBinaryPrefix(prefix []byte, windowFull bool) bool {
	if windowFull {
		prefix = trimIncompleteRune(prefix)
	}
	return IsBinary(prefix)
}

// trimIncompleteRune drops the trailing bytes of a UTF-8 sequence the window
// boundary cut in half: at most utf8.UTFMax-1 continuation bytes plus the
// leading byte they belong to. Longer continuation runs are genuine encoding
// errors and are left in place.
func trimIncompleteRune(data []byte) []byte {
	trimmed := 0
	for len(data) > 0 && trimmed < utf8.UTFMax-1 {
		lastByte := data[len(data)-1]
		if lastByte&0xC0 != 0x80 {
			break
		}
		data = data[:len(data)-1]
		trimmed++
	}
	if len(data) > 0 && data[len(data)-1] >= 0xC0 {
		data = data[:len(data)-1]
	}
	return data
}
