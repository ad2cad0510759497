package marks

// Record is the result of one assessment. MarksObtained is expected within [0, MaxMarks]
// but it is not enforced.
type Record struct {
	StudentID      string  `json:"studentId"`
	SubjectCode    string  `json:"subjectCode"`
	AssessmentType string  `json:"assessmentType"`
	MaxMarks       float64 `json:"maxMarks"`
	MarksObtained  float64 `json:"marksObtained"`
	Date           string  `json:"date"`
}
