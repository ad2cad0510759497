package announcement

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
)

type Target string

const (
	TargetAll     Target = "all"
	TargetSubject Target = "subject"
)

// AllSubjects is the SubjectCode of announcements addressed to everyone.
const AllSubjects = "all"

var ErrInvalidTarget = errors.New("invalid announcement target")

func ParseTarget(s string) (Target, error) {
	target := Target(core.CleanString(s, true /* lower */))
	if !target.Valid() {
		return "", errors.Wrap(ErrInvalidTarget, fmt.Sprintf("%q", s))
	}
	return target, nil
}

func (t Target) Valid() bool { return t == TargetAll || t == TargetSubject }

func (t *Target) UnmarshalText(text []byte) error {
	target := Target(text)
	if !target.Valid() {
		return errors.Wrap(ErrInvalidTarget, fmt.Sprintf("%q", text))
	}
	*t = target
	return nil
}

// Announcement is a message posted by a faculty member.
// Department and Year are optional; they scope the announcement to a class.
type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	SubjectCode string `json:"subjectCode"`
	FacultyID   string `json:"facultyId"`
	FacultyName string `json:"facultyName"`
	Target      Target `json:"target"`
	Date        string `json:"date"`
	Department  string `json:"department,omitempty"`
	Year        string `json:"year,omitempty"`
}

// New builds an Announcement for subjectCode, targeting everyone when subjectCode is AllSubjects.
func New(title, message, subjectCode, facultyID, facultyName string) Announcement {
	target := TargetSubject
	if subjectCode == AllSubjects {
		target = TargetAll
	}
	return Announcement{
		Title:       title,
		Message:     message,
		SubjectCode: subjectCode,
		FacultyID:   facultyID,
		FacultyName: facultyName,
		Target:      target,
	}
}
