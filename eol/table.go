package eol

import "time"

// EOLDate returns the end-of-life date recorded for the given distributor
// and release codename.
func (t Table) EOLDate(distributor, codename string) (time.Time, bool) {
	releases, ok := t[distributor]
	if !ok {
		return time.Time{}, false
	}
	eolDate, ok := releases[codename]
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(eolDate, 0), true
}

// IsEOL reports whether the release had reached end of life at the given
// moment. Releases the table doesn't know about report false; callers
// decide how to treat those.
func (t Table) IsEOL(distributor, codename string, at time.Time) bool {
	eolDate, ok := t.EOLDate(distributor, codename)
	return ok && !at.Before(eolDate)
}
