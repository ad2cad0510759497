package attendance

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

var ErrInvalidStatus = errors.New("invalid attendance status")

func ParseStatus(s string) (Status, error) {
	status := Status(core.CleanString(s, true /* lower */))
	if !status.Valid() {
		return "", errors.Wrap(ErrInvalidStatus, fmt.Sprintf("%q", s))
	}
	return status, nil
}

func (s Status) Valid() bool { return s == StatusPresent || s == StatusAbsent }

func (s *Status) UnmarshalText(text []byte) error {
	status := Status(text)
	if !status.Valid() {
		return errors.Wrap(ErrInvalidStatus, fmt.Sprintf("%q", text))
	}
	*s = status
	return nil
}

// Record is one student's presence at one class session.
// The same student, subject and date may be recorded more than once; each record counts.
type Record struct {
	StudentID   string `json:"studentId"`
	SubjectCode string `json:"subjectCode"`
	Date        string `json:"date"`
	Status      Status `json:"status"`
}
