package stats

import "unicode"

// State is the classifier state carried from one code point to the next.
// It never outlives a single computation.
type State struct {
	InWord    bool // previous code point was part of an alphanumeric run
	PendingCR bool // previous code point was '\r', a following '\n' completes the pair
	Last      rune // most recent code point, only read by Finalize
}

// Step folds one code point into the counters.
//
// Two classifications run on every code point: the line/space/tab bucket and the
// word/special bucket. They do not share any branch, so whitespace is counted as a
// space or tab and is also excluded from the special count.
func Step(fs FileStats, st State, r rune) (FileStats, State) {
	fs.Characters++
	st.Last = r
	fs, st = stepLines(fs, st, r)
	fs, st = stepWords(fs, st, r)
	return fs, st
}

func stepLines(fs FileStats, st State, r rune) (FileStats, State) {
	switch r {
	case ' ':
		fs.Spaces++
	case '\t':
		fs.Tabs++
	}

	switch r {
	case '\r':
		fs.Lines++
		st.PendingCR = true
	case '\n':
		if st.PendingCR {
			// second half of a CRLF pair, already counted at '\r'
			st.PendingCR = false
		} else {
			fs.Lines++
		}
	default:
		st.PendingCR = false
	}
	return fs, st
}

func stepWords(fs FileStats, st State, r rune) (FileStats, State) {
	switch {
	case IsWhitespace(r):
		st.InWord = false
	case IsAlphanumeric(r):
		if !st.InWord {
			fs.Words++
			st.InWord = true
		}
	default:
		st.InWord = false
		fs.Special++
	}
	return fs, st
}

// Finalize counts a trailing line that has no terminator.
// Input without any code point keeps zero lines.
func Finalize(fs FileStats, st State) FileStats {
	if fs.Characters > 0 && st.Last != '\n' && st.Last != '\r' {
		fs.Lines++
	}
	return fs
}

// IsWhitespace reports whether r separates words without being special.
// It is unicode.IsSpace extended with the ASCII information separators
// U+001C..U+001F, which Unicode classifies as segment separators.
func IsWhitespace(r rune) bool {
	if r >= 0x1C && r <= 0x1F {
		return true
	}
	return unicode.IsSpace(r)
}

// IsAlphanumeric reports whether r is a Unicode letter or number.
// Combining marks are neither and count as special.
func IsAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
