package attendance

import "github.com/trezcool/portal/core"

// Standing classifies an attendance percentage.
type Standing string

const (
	StandingLow     Standing = "Low"     // < 75
	StandingAverage Standing = "Average" // [75, 85)
	StandingGood    Standing = "Good"    // >= 85
)

func Classify(percentage float64) Standing {
	switch {
	case percentage < 75:
		return StandingLow
	case percentage < 85:
		return StandingAverage
	default:
		return StandingGood
	}
}

type Summary struct {
	Total      int      `json:"total"`
	Present    int      `json:"present"`
	Absent     int      `json:"absent"`
	Percentage float64  `json:"percentage"`
	Standing   Standing `json:"standing"`
}

// Select returns the records of studentID and subjectCode; an empty argument matches any value.
func Select(records []Record, studentID, subjectCode string) []Record {
	selected := make([]Record, 0)
	for _, r := range records {
		if studentID != "" && r.StudentID != studentID {
			continue
		}
		if subjectCode != "" && r.SubjectCode != subjectCode {
			continue
		}
		selected = append(selected, r)
	}
	return selected
}

// Rollup summarizes the attendance of studentID, optionally restricted to subjectCode.
func Rollup(records []Record, studentID, subjectCode string) Summary {
	return Summarize(Select(records, studentID, subjectCode))
}

// Summarize counts records; the percentage is 0 when there are none.
func Summarize(records []Record) Summary {
	sum := Summary{Total: len(records)}
	for _, r := range records {
		if r.Status == StatusPresent {
			sum.Present++
		}
	}
	sum.Absent = sum.Total - sum.Present
	sum.Percentage = core.Percent(float64(sum.Present), float64(sum.Total))
	sum.Standing = Classify(sum.Percentage)
	return sum
}
