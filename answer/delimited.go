package answer

import (
	"strings"

	"github.com/fwojciec/jobrag"
)

const jobsMarker = "JOBS:"

// ParseDelimited extracts suggestions from the block following the first
// case-insensitive "JOBS:" marker. The block looks like
//
//	JOBS:
//	- role | company | location | description
//
// Lines that do not start with "-", have fewer than four fields, or have a
// blank role are skipped. Pipes past the third field are kept in the
// description. found reports whether the marker was located at all.
func ParseDelimited(text string) (suggestions []jobrag.Suggestion, found bool) {
	text = normalize(text)

	i := indexFold(text, jobsMarker)
	if i < 0 {
		return nil, false
	}

	for _, line := range strings.Split(text[i+len(jobsMarker):], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		if s, ok := parseDelimitedLine(line); ok {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, true
}

func parseDelimitedLine(line string) (jobrag.Suggestion, bool) {
	fields := strings.Split(strings.TrimPrefix(line, "-"), "|")
	if len(fields) < 4 {
		return jobrag.Suggestion{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	s := jobrag.Suggestion{
		Role:        fields[0],
		Company:     fields[1],
		Location:    fields[2],
		Description: strings.Join(fields[3:], " | "),
	}
	if err := s.Validate(); err != nil {
		return jobrag.Suggestion{}, false
	}
	return s, true
}
