package models

// Course is one row of the transcript's score table. Cells are kept as the
// text printed on the page.
type Course struct {
	Code       string `json:"code"`       // Course code, e.g. EK202401
	Name       string `json:"name"`       // Course name
	Credit     string `json:"credit"`     // Credit hours
	Coursework string `json:"coursework"` // 平时成绩
	Exam       string `json:"exam"`       // 期末成绩
	Total      string `json:"total"`      // 综合成绩
	FullScore  bool   `json:"fullScore"`  // Total cell is highlighted on the page
}

// Transcript is the content of the transcript page, as read back from its markup
type Transcript struct {
	School     string   `json:"school"`     // School name
	Department string   `json:"department"` // Department line
	Title      string   `json:"title"`      // Sheet title
	Info       []string `json:"info"`       // Student info lines, one per paragraph
	Header     []string `json:"header"`     // Score table column names
	Courses    []Course `json:"courses"`
	FinalScore string   `json:"finalScore"` // Final score line
	Footer     string   `json:"footer"`     // Print time and notice
}

// Cells returns the course as a table row in page column order
func (c Course) Cells() []string {
	return []string{c.Code, c.Name, c.Credit, c.Coursework, c.Exam, c.Total}
}
