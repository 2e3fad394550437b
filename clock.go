package finances

import "time"

// now is the wall clock used to date transactions and value investments.
// Tests replace it.
var now = time.Now

// pythonTime formats t like the default string of a datetime:
// "2006-01-02 15:04:05" with microseconds only when they are not zero.
func pythonTime(t time.Time) string {
	if t.Nanosecond()/1000 == 0 {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02 15:04:05.000000")
}

