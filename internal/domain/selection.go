package domain

// Selection holds the user's constraint per filter dimension. A nil field
// means no constraint; an empty string is an ordinary value to match.
type Selection struct {
	Role     *string `json:"role,omitempty"`
	Language *string `json:"language,omitempty"`
	Tool     *string `json:"tool,omitempty"`
}

// IsEmpty reports whether no dimension is constrained.
func (s Selection) IsEmpty() bool {
	return s.Role == nil && s.Language == nil && s.Tool == nil
}

// Matches reports whether job satisfies every constrained dimension.
func (s Selection) Matches(job Job) bool {
	if s.Role != nil && job.Role != *s.Role {
		return false
	}
	if s.Language != nil && !job.HasLanguage(*s.Language) {
		return false
	}
	if s.Tool != nil && !job.HasTool(*s.Tool) {
		return false
	}
	return true
}

func (s Selection) WithRole(role string) Selection {
	s.Role = &role
	return s
}

func (s Selection) WithLanguage(lang string) Selection {
	s.Language = &lang
	return s
}

func (s Selection) WithTool(tool string) Selection {
	s.Tool = &tool
	return s
}
