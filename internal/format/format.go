package format

import (
    "strings"
    "time"
)

// Date formats time in a locale-friendly short form.
func Date(t time.Time, lang string) string {
    switch strings.ToLower(lang) {
    case "zh":
        return t.Format("2006年1月2日")
    default:
        return t.Format("Jan 2, 2006")
    }
}

// DateTime formats a timestamp with minutes, used for live stream schedules.
func DateTime(t time.Time, lang string) string {
    switch strings.ToLower(lang) {
    case "zh":
        return t.Format("2006年1月2日 15:04")
    default:
        return t.Format("Jan 2, 2006 15:04")
    }
}
