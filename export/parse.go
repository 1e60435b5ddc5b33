package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"transcript-server-go/models"
)

// ErrNoCourses is returned when the document has no score table rows.
var ErrNoCourses = errors.New("transcript has no course rows")

const courseColumns = 6

// Parse reads the transcript page markup back into a Transcript. Cell text
// is copied as printed; runs of whitespace (including &nbsp;) collapse to
// one space.
func Parse(r io.Reader) (*models.Transcript, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript html: %w", err)
	}

	t := &models.Transcript{}
	var walkErr error
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if walkErr != nil {
			return
		}
		if n.Type == html.ElementNode {
			switch {
			case hasClass(n, "school-name"):
				t.School = text(n)
				return
			case hasClass(n, "dept-name"):
				t.Department = text(n)
				return
			case n.DataAtom == atom.Div && hasClass(n.Parent, "school-info"):
				// Unclassed div under the school header is the sheet title.
				t.Title = text(n)
				return
			case n.DataAtom == atom.P && hasClass(n.Parent, "student-info"):
				t.Info = append(t.Info, text(n))
				return
			case n.DataAtom == atom.Th:
				t.Header = append(t.Header, text(n))
				return
			case n.DataAtom == atom.Tr && n.Parent != nil && n.Parent.DataAtom == atom.Tbody:
				course, err := parseRow(n)
				if err != nil {
					walkErr = fmt.Errorf("course row %d: %w", len(t.Courses)+1, err)
					return
				}
				t.Courses = append(t.Courses, course)
				return
			case hasClass(n, "final-score"):
				t.FinalScore = text(n)
				return
			case hasClass(n, "footer"):
				t.Footer = text(n)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if walkErr != nil {
		return nil, walkErr
	}
	if len(t.Courses) == 0 {
		return nil, ErrNoCourses
	}
	return t, nil
}

func parseRow(tr *html.Node) (models.Course, error) {
	var cells []string
	full := false
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Td {
			continue
		}
		cells = append(cells, text(c))
		if hasClass(c, "full-score") {
			full = true
		}
	}
	if len(cells) != courseColumns {
		return models.Course{}, fmt.Errorf("want %d cells, got %d", courseColumns, len(cells))
	}
	return models.Course{
		Code:       cells[0],
		Name:       cells[1],
		Credit:     cells[2],
		Coursework: cells[3],
		Exam:       cells[4],
		Total:      cells[5],
		FullScore:  full,
	}, nil
}

func hasClass(n *html.Node, class string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// text returns the node's text content with whitespace collapsed.
func text(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
