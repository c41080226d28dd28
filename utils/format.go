package utils

import "time"

// FormatDateTime renders an appointment time the way pages and emails show it.
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// FormatDate renders a calendar date.
func FormatDate(t time.Time) string {
	return t.Format("01/02/2006")
}
