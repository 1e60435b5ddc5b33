package export

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"transcript-server-go/models"
	"transcript-server-go/transcript"
)

func parsePage(t *testing.T) *models.Transcript {
	t.Helper()
	tr, err := Parse(bytes.NewReader(transcript.HTML()))
	require.NoError(t, err)
	return tr
}

func TestParse_Page(t *testing.T) {
	tr := parsePage(t)

	assert.Equal(t, "XX大学", tr.School)
	assert.Equal(t, "工科院系 - 教务管理系统", tr.Department)
	assert.Equal(t, "学生学期成绩单", tr.Title)
	require.Len(t, tr.Info, 2)
	assert.Equal(t, "姓名：小明 学号：2023002001 专业：某工科", tr.Info[0])
	assert.Equal(t, "年级：2023级 班级：工科2302班 学期：2024-2025学年第一学期", tr.Info[1])
	assert.Equal(t, []string{"课程编号", "课程名称", "学分", "平时成绩", "期末成绩", "综合成绩"}, tr.Header)
	assert.Equal(t, "最终综合评定成绩：59", tr.FinalScore)
	assert.Equal(t, "打印时间：2025-12-26 教务系统自动生成，无盖章无效", tr.Footer)
}

func TestParse_Courses(t *testing.T) {
	tr := parsePage(t)
	require.Len(t, tr.Courses, 6)

	assert.Equal(t, models.Course{
		Code: "EK202401", Name: "泛函分析", Credit: "3.0",
		Coursework: "50", Exam: "45", Total: "47",
	}, tr.Courses[0])
	assert.Equal(t, models.Course{
		Code: "EK202406", Name: "scratch编程", Credit: "2.0",
		Coursework: "100", Exam: "100", Total: "100", FullScore: true,
	}, tr.Courses[5])

	for _, c := range tr.Courses[:5] {
		assert.False(t, c.FullScore, c.Code)
	}
}

func TestParse_NoCourses(t *testing.T) {
	_, err := Parse(strings.NewReader(`<table class="score-table"><tbody></tbody></table>`))
	assert.True(t, errors.Is(err, ErrNoCourses))
}

func TestParse_ShortRow(t *testing.T) {
	_, err := Parse(strings.NewReader(`<table><tbody><tr><td>EK1</td><td>x</td></tr></tbody></table>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course row 1: want 6 cells, got 2")
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(parsePage(t), &buf, ""))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DefaultSheet}, f.GetSheetList())

	get := func(cell string) string {
		v, err := f.GetCellValue(DefaultSheet, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "XX大学", get("A1"))
	assert.Equal(t, "学生学期成绩单", get("A3"))
	assert.Equal(t, "姓名：小明 学号：2023002001 专业：某工科", get("A5"))
	assert.Equal(t, "课程编号", get("A8"))
	assert.Equal(t, "EK202401", get("A9"))
	assert.Equal(t, "scratch编程", get("B14"))
	assert.Equal(t, "100", get("F14"))
	assert.Equal(t, "最终综合评定成绩：59", get("A16"))

	full, err := f.GetCellStyle(DefaultSheet, "F14")
	require.NoError(t, err)
	plain, err := f.GetCellStyle(DefaultSheet, "F13")
	require.NoError(t, err)
	assert.NotZero(t, full)
	assert.NotEqual(t, full, plain)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.xlsx")
	require.NoError(t, WriteFile(parsePage(t), path, "Sheet1"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "XX大学", rows[0][0])
}

func TestWriteWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWorkbook(&models.Transcript{}, &buf, "")
	assert.ErrorIs(t, err, ErrNoCourses)
	assert.Zero(t, buf.Len())
}
