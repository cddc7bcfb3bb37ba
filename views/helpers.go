package views

import (
	"bytes"
	"fmt"
	"html"
	"time"
)

var greekMonths = [...]string{
	"Ιανουαρίου", "Φεβρουαρίου", "Μαρτίου", "Απριλίου", "Μαΐου", "Ιουνίου",
	"Ιουλίου", "Αυγούστου", "Σεπτεμβρίου", "Οκτωβρίου", "Νοεμβρίου", "Δεκεμβρίου",
}

// FormatDate renders t as a Greek long date, e.g. "12 Σεπτεμβρίου 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), greekMonths[t.Month()-1], t.Year())
}

// esc is html.EscapeString, short for the many call sites below.
func esc(s string) string { return html.EscapeString(s) }

func attr(buf *bytes.Buffer, name, val string) {
	if val == "" {
		return
	}
	buf.WriteString(" " + name + `="` + esc(val) + `"`)
}

func tag(buf *bytes.Buffer, name, class, text string) {
	buf.WriteString("<" + name)
	attr(buf, "class", class)
	buf.WriteString(">" + esc(text) + "</" + name + ">")
}

func link(buf *bytes.Buffer, href, class, text string) {
	buf.WriteString("<a")
	attr(buf, "href", href)
	attr(buf, "class", class)
	buf.WriteString(">" + esc(text) + "</a>")
}

func readingTime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%d λεπτά ανάγνωσης", minutes)
}
