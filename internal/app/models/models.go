package models

// GradeLevel is the school grade a practice targets. The wire format keeps
// the original Japanese grade codes (elementary 1-6, junior high 1-3).
type GradeLevel string

const (
	GradeElementary1 GradeLevel = "小1"
	GradeElementary2 GradeLevel = "小2"
	GradeElementary3 GradeLevel = "小3"
	GradeElementary4 GradeLevel = "小4"
	GradeElementary5 GradeLevel = "小5"
	GradeElementary6 GradeLevel = "小6"
	GradeJuniorHigh1 GradeLevel = "中1"
	GradeJuniorHigh2 GradeLevel = "中2"
	GradeJuniorHigh3 GradeLevel = "中3"
)

// IsValid reports whether the grade level is one of the known codes.
func (g GradeLevel) IsValid() bool {
	switch g {
	case GradeElementary1, GradeElementary2, GradeElementary3,
		GradeElementary4, GradeElementary5, GradeElementary6,
		GradeJuniorHigh1, GradeJuniorHigh2, GradeJuniorHigh3:
		return true
	}
	return false
}

// LearningLevel describes the difficulty tier of a practice
type LearningLevel string

const (
	LearningBasic    LearningLevel = "basic"
	LearningStandard LearningLevel = "standard"
	LearningAdvanced LearningLevel = "advanced"
)

// IsValid reports whether the learning level is one of the known tiers.
func (l LearningLevel) IsValid() bool {
	switch l {
	case LearningBasic, LearningStandard, LearningAdvanced:
		return true
	}
	return false
}

// ContactStatus tracks where a parent inquiry is in its lifecycle
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusReplied ContactStatus = "replied"
	ContactStatusClosed  ContactStatus = "closed"
)

// IsValid reports whether the status is one of the known states.
func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusNew, ContactStatusReplied, ContactStatusClosed:
		return true
	}
	return false
}
