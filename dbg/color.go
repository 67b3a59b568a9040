package dbg

import "github.com/logrusorgru/aurora"

// Verdict colors a deviation for terminal output: green when it is within
// the allowed error, red otherwise. A nil Aurora (colors disabled) passes the
// text through.
func Verdict(au aurora.Aurora, deviation, allowed float64, text string) string {
	if au == nil {
		return text
	}
	if deviation <= allowed {
		return au.Green(text).String()
	}
	return au.Red(text).String()
}

// Muted renders secondary output such as statistics.
func Muted(au aurora.Aurora, text string) string {
	if au == nil {
		return text
	}
	return au.Cyan(text).String()
}
