package classifier

import "unicode"

var kana = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309f, Stride: 1}, // Hiragana
		{Lo: 0x30a0, Hi: 0x30ff, Stride: 1}, // Katakana
	},
}

var hangul = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x11ff, Stride: 1}, // Jamo
		{Lo: 0xac00, Hi: 0xd7af, Stride: 1}, // Syllables
	},
}

var ideographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1}, // Extension A
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1}, // Unified
	},
}

func containsScript(text string, table *unicode.RangeTable) bool {
	for _, r := range text {
		if unicode.Is(table, r) {
			return true
		}
	}
	return false
}

// ideographStats returns the ideograph count and the count of non-space runes.
func ideographStats(text string) (ideographCount, nonSpace int) {
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		nonSpace++
		if unicode.Is(ideographs, r) {
			ideographCount++
		}
	}
	return ideographCount, nonSpace
}
