package answer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/jobrag"
)

// Labels recognized inside bullet details. Each label's value ends at the
// next label or at the end of the details.
const (
	labelCompany  = "Company:"
	labelLocation = "Location:"
	labelReason   = "Reason:"
)

var labels = []string{labelCompany, labelLocation, labelReason}

// ParseBullets extracts one suggestion per markdown bullet with a bold title,
// as in
//
//	Top matches:
//	- **Role, Company, Location**: Company: ... Location: ... Reason: ...
//
// The bullet glyph is "-" or "•" and must start the text or follow
// whitespace. The details of a bullet run until the next bullet with a bold
// title or the end of the text. Suggestions are returned in text order and
// may have empty fields.
//
// A Company: or Location: label overrides the value taken from the title
// only when it is followed by non-blank text; an empty label keeps the title
// value.
func ParseBullets(text string) []jobrag.Suggestion {
	text = normalize(text)

	var suggestions []jobrag.Suggestion
	for pos := 0; pos < len(text); {
		b, ok := nextBullet(text, pos)
		if !ok {
			break
		}
		suggestions = append(suggestions, parseBullet(b.title, b.details))
		pos = b.end
	}
	return suggestions
}

// bullet is a matched bullet span.
type bullet struct {
	title   string
	details string
	end     int // offset just past the details
}

// nextBullet returns the first bullet span that starts at or after pos.
func nextBullet(text string, pos int) (bullet, bool) {
	for i := pos; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isGlyph(r) && glyphBoundary(text, pos, i) {
			if title, closeEnd, ok := boldTitle(text, i+size); ok {
				end := detailsEnd(text, closeEnd)
				return bullet{
					title:   title,
					details: detailsText(text[closeEnd:end]),
					end:     end,
				}, true
			}
		}
		i += size
	}
	return bullet{}, false
}

func isGlyph(r rune) bool {
	return r == '-' || r == '•'
}

// glyphBoundary reports whether the glyph at i starts the text or follows a
// whitespace rune that lies within the scanned region beginning at pos.
func glyphBoundary(text string, pos, i int) bool {
	if i == 0 {
		return true
	}
	r, size := utf8.DecodeLastRuneInString(text[:i])
	return unicode.IsSpace(r) && i-size >= pos
}

// boldTitle parses optional whitespace, "**", a single-line title of at
// least one rune and the closing "**", starting at i. It returns the trimmed
// title and the offset just past the closing "**".
func boldTitle(text string, i int) (title string, closeEnd int, ok bool) {
	k := skipSpace(text, i)
	if !strings.HasPrefix(text[k:], "**") {
		return "", 0, false
	}
	start := k + 2

	line := text[start:]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	if line == "" {
		return "", 0, false
	}
	_, size := utf8.DecodeRuneInString(line)
	c := strings.Index(line[size:], "**")
	if c < 0 {
		return "", 0, false
	}
	end := start + size + c
	return strings.TrimSpace(text[start:end]), end + 2, true
}

// detailsEnd returns the offset of the whitespace rune that precedes the
// next bullet opening at or after from, or len(text).
func detailsEnd(text string, from int) int {
	for p := from; p < len(text); {
		r, size := utf8.DecodeRuneInString(text[p:])
		if unicode.IsSpace(r) && opensBullet(text, p+size) {
			return p
		}
		p += size
	}
	return len(text)
}

// opensBullet reports whether a glyph, optional whitespace and "**" start at i.
func opensBullet(text string, i int) bool {
	r, size := utf8.DecodeRuneInString(text[i:])
	if size == 0 || !isGlyph(r) {
		return false
	}
	return strings.HasPrefix(text[skipSpace(text, i+size):], "**")
}

// detailsText drops the whitespace and optional colon that separate a title
// from its details.
func detailsText(raw string) string {
	raw = strings.TrimLeftFunc(raw, unicode.IsSpace)
	raw = strings.TrimPrefix(raw, ":")
	return strings.TrimSpace(raw)
}

func parseBullet(title, details string) jobrag.Suggestion {
	s := parseTitle(title)
	applyDashSplit(&s, title)

	details = collapseSpace(strings.ReplaceAll(details, "**", ""))
	if v, ok := labelValue(details, labelCompany); ok {
		s.Company = v
	}
	if v, ok := labelValue(details, labelLocation); ok {
		s.Location = v
	}
	s.Description = details
	if v, ok := labelValue(details, labelReason); ok {
		s.Description = v
	}
	return s
}

// parseTitle splits "Role, Company, Location..." on commas. A title without
// commas becomes the role.
func parseTitle(title string) jobrag.Suggestion {
	var parts []string
	for _, p := range strings.Split(title, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	s := jobrag.Suggestion{Role: title}
	if len(parts) > 0 {
		s.Role = parts[0]
	}
	if len(parts) > 1 {
		s.Company = parts[1]
	}
	if len(parts) > 2 {
		s.Location = strings.Join(parts[2:], ", ")
	}
	return s
}

// applyDashSplit overrides role and company from a "Role - Company" title
// when the comma split found no company. " - " wins over " – ".
func applyDashSplit(s *jobrag.Suggestion, title string) {
	if s.Company != "" {
		return
	}

	var sep string
	switch {
	case strings.Contains(title, " - "):
		sep = " - "
	case strings.Contains(title, " – "):
		sep = " – "
	default:
		return
	}

	parts := strings.Split(title, sep)
	if role := strings.TrimSpace(parts[0]); role != "" {
		s.Role = role
	}
	if company := strings.TrimSpace(parts[1]); company != "" {
		s.Company = company
	}
}

// labelValue returns the trimmed text following the first case-insensitive
// occurrence of label, up to the next label or the end of details. An empty
// value is reported as absent.
func labelValue(details, label string) (string, bool) {
	i := indexFold(details, label)
	if i < 0 {
		return "", false
	}

	rest := details[i+len(label):]
	if j := nextLabel(rest); j >= 0 {
		rest = rest[:j]
	}
	v := strings.TrimSpace(rest)
	return v, v != ""
}

func nextLabel(s string) int {
	end := -1
	for _, l := range labels {
		if i := indexFold(s, l); i >= 0 && (end < 0 || i < end) {
			end = i
		}
	}
	return end
}
