// Package marker adds and removes the vacation suffix on a display name.
package marker

import (
	"regexp"
	"time"
)

const (
	// Glyph closes every marker, e.g. "(04/01休)".
	Glyph = "休"

	dateLayout = "01/02"
)

// markerRe is greedy: "a(01/01休)b(01/02休)c" loses everything between the
// first "(" and the last "休)". Existing display names rely on this, keep it.
var markerRe = regexp.MustCompile(`\(.*` + Glyph + `\)`)

// Append returns name with a "(<date>休)" suffix. The date is not validated
// and an existing marker is not detected, so appending twice yields two markers.
func Append(name, date string) string {
	return name + "(" + date + Glyph + ")"
}

// Strip removes the vacation marker from name. Names without a marker are
// returned unchanged.
func Strip(name string) string {
	return markerRe.ReplaceAllString(name, "")
}

// Tomorrow formats the day after now as MM/DD in now's location.
func Tomorrow(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(dateLayout)
}
