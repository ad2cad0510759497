package marks

import "github.com/trezcool/portal/core"

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// thresholds are checked in order; the first minimum reached wins
var thresholds = []struct {
	min   float64
	grade Grade
}{
	{90, GradeAPlus},
	{80, GradeA},
	{70, GradeB},
	{60, GradeC},
	{50, GradeD},
}

func GradeFor(percentage float64) Grade {
	for _, th := range thresholds {
		if percentage >= th.min {
			return th.grade
		}
	}
	return GradeF
}

// Scored is a Record with its percentage and grade.
type Scored struct {
	Record
	Percentage float64 `json:"percentage"`
	Grade      Grade   `json:"grade"`
}

// Score grades r. A record without MaxMarks scores 0.
func Score(r Record) Scored {
	pct := core.Percent(r.MarksObtained, r.MaxMarks)
	return Scored{Record: r, Percentage: pct, Grade: GradeFor(pct)}
}

// SubjectTotal sums every assessment of a subject.
type SubjectTotal struct {
	SubjectCode string  `json:"subjectCode"`
	Obtained    float64 `json:"obtained"`
	Total       float64 `json:"total"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
	Grade       Grade   `json:"grade"`
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

// Rollup scores the records of studentID, optionally restricted to subjectCode.
func Rollup(records []Record, studentID, subjectCode string) []Scored {
	selected := Select(records, studentID, subjectCode)
	scored := make([]Scored, 0, len(selected))
	for _, r := range selected {
		scored = append(scored, Score(r))
	}
	return scored
}

// BySubject aggregates records per subject code, in first-seen order.
func BySubject(records []Record) []SubjectTotal {
	idx := make(map[string]int)
	totals := make([]SubjectTotal, 0)
	for _, r := range records {
		i, ok := idx[r.SubjectCode]
		if !ok {
			i = len(totals)
			idx[r.SubjectCode] = i
			totals = append(totals, SubjectTotal{SubjectCode: r.SubjectCode})
		}
		totals[i].Obtained += r.MarksObtained
		totals[i].Total += r.MaxMarks
		totals[i].Count++
	}
	for i := range totals {
		totals[i].Percentage = core.Percent(totals[i].Obtained, totals[i].Total)
		totals[i].Grade = GradeFor(totals[i].Percentage)
	}
	return totals
}
