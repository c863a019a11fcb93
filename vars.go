package main

import "unicode"

// getVar and setVar implement the Variable Store (spec §4.4): a fixed
// 26-cell integer array addressed by the uppercased first letter of the
// given name. Only the first letter is significant for storage; the
// scanner is responsible for consuming the rest of a longer identifier
// (e.g. "LETTER") as a single VARIABLE token so that the remaining letters
// are never re-scanned as separate tokens.
func (ip *Interp) getVar(name string) int {
	return ip.vars[varIndex(name)]
}

func (ip *Interp) setVar(name string, value int) {
	ip.vars[varIndex(name)] = value
}

func varIndex(name string) int {
	if name == "" {
		return 0
	}
	return int(unicode.ToUpper(rune(name[0])) - 'A')
}
