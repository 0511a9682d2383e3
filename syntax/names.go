package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoPositionCategory maps events to a category that ignores whether the
// event starts, ends or is in the middle of a process.
var NoPositionCategory = func() map[string]string {
	out := map[string]string{}
	for _, c := range UntypedEvents {
		out[c] = "event"
	}
	for _, c := range MessageEvents {
		out[c] = "messageEvent"
	}
	for _, c := range TimerEvents {
		out[c] = "timerEvent"
	}
	return out
}()

var longNames = func() map[string]string {
	out := map[string]string{}
	for _, g := range Groups {
		for _, c := range g.Categories {
			out[c] = SplitCamelCase(c)
		}
	}
	for _, c := range NoPositionCategory {
		out[c] = SplitCamelCase(c)
	}

	out[SubProcessCollapsed] = "Subprocess (collapsed)"
	out[SubProcessExpanded] = "Subprocess (expanded)"
	out[EventBasedGateway] = "Event-based Gateway"
	out[TerminateEndEvent] = "Terminate End Event"
	out[Label] = "Label"
	out["subProcess"] = "Subprocess"
	return out
}()

// LongName returns the human-readable name of a category.
func LongName(category string) (string, bool) {
	name, ok := longNames[category]
	return name, ok
}

// SplitCamelCase turns "timerStartEvent" into "Timer Start Event".
func SplitCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CapitalizeFirst upper-cases only the first letter.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
