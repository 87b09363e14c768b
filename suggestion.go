package jobrag

import "strings"

// Suggestion represents a single job recommendation extracted from an answer.
// Suggestions have no identity; they are positional within the list they
// were extracted into.
type Suggestion struct {
	Role        string `json:"role" yaml:"role"`
	Company     string `json:"company" yaml:"company"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

// Validate returns an error if the suggestion contains invalid fields.
func (s *Suggestion) Validate() error {
	if strings.TrimSpace(s.Role) == "" {
		return Errorf(EINVALID, "suggestion role required")
	}
	return nil
}
