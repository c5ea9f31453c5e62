package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

func rec(date, subjectId, studentId string, status models.AttendanceStatus) models.AttendanceRecord {
	return models.AttendanceRecord{Date: date, StudentId: studentId, SubjectId: subjectId, Status: status}
}

func TestStudentPercentage(t *testing.T) {
	tests := []struct {
		name    string
		records []models.AttendanceRecord
		want    float64
	}{
		{name: "no records", want: 0},
		{
			name: "half present",
			records: []models.AttendanceRecord{
				rec("2025-01-10", "1", "1", models.StatusPresent),
				rec("2025-01-11", "1", "1", models.StatusPresent),
				rec("2025-01-12", "1", "1", models.StatusAbsent),
				rec("2025-01-13", "1", "1", models.StatusAbsent),
			},
			want: 50,
		},
		{
			name: "all present",
			records: []models.AttendanceRecord{
				rec("2025-01-10", "1", "1", models.StatusPresent),
			},
			want: 100,
		},
		{
			name: "other students ignored",
			records: []models.AttendanceRecord{
				rec("2025-01-10", "1", "1", models.StatusPresent),
				rec("2025-01-10", "1", "2", models.StatusAbsent),
				rec("2025-01-11", "1", "2", models.StatusAbsent),
			},
			want: 100,
		},
		{
			name: "spans subjects",
			records: []models.AttendanceRecord{
				rec("2025-01-10", "1", "1", models.StatusPresent),
				rec("2025-01-10", "2", "1", models.StatusAbsent),
				rec("2025-01-10", "3", "1", models.StatusAbsent),
			},
			want: 100.0 / 3.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StudentPercentage(tt.records, "1")
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 67, Round(200.0/3.0))
	assert.Equal(t, 50, Round(50.0))
	assert.Equal(t, 0, Round(0.4))
}

func TestCourseOverview(t *testing.T) {
	courses := []models.Course{
		{Id: "1", Name: "Information Technology"},
		{Id: "2", Name: "Computer Science"},
	}
	students := []models.Student{
		{Id: "1", CourseId: "1"},
		{Id: "2", CourseId: "1"},
		{Id: "3", CourseId: "2"},
	}
	records := []models.AttendanceRecord{
		// Student 1: 100% across two subjects.
		rec("2025-01-10", "1", "1", models.StatusPresent),
		rec("2025-01-10", "2", "1", models.StatusPresent),
		// Student 2: 50%.
		rec("2025-01-10", "1", "2", models.StatusPresent),
		rec("2025-01-11", "1", "2", models.StatusAbsent),
		// Student 3 has no records and must not drag course 2 to a
		// phantom average.
	}

	points := CourseOverview(courses, students, records)
	require.Len(t, points, 2)

	assert.Equal(t, "1", points[0].CourseId)
	assert.InDelta(t, 75.0, points[0].Percentage, 1e-9)

	// No qualifying students: 0.
	assert.Equal(t, "2", points[1].CourseId)
	assert.Zero(t, points[1].Percentage)
}

func TestTrend(t *testing.T) {
	records := []models.AttendanceRecord{
		// Out of date order on purpose; another student mixed in.
		rec("2025-01-12", "1", "1", models.StatusAbsent),
		rec("2025-01-10", "1", "1", models.StatusPresent),
		rec("2025-01-11", "1", "2", models.StatusAbsent),
		rec("2025-01-11", "1", "1", models.StatusPresent),
		rec("2025-01-13", "1", "1", models.StatusAbsent),
	}

	points := Trend(records, "1")
	require.Len(t, points, 4)

	assert.Equal(t, []string{"2025-01-10", "2025-01-11", "2025-01-12", "2025-01-13"},
		[]string{points[0].Date, points[1].Date, points[2].Date, points[3].Date})
	assert.Equal(t, 100, points[0].Percentage)
	assert.Equal(t, 100, points[1].Percentage)
	assert.Equal(t, 67, points[2].Percentage)
	assert.Equal(t, 50, points[3].Percentage)
}

func TestTrendEmpty(t *testing.T) {
	assert.Empty(t, Trend(nil, "1"))
}

func TestSubjectSummaries(t *testing.T) {
	subjects := []models.Subject{
		{Id: "1", Name: "Artificial Intelligence", Code: "AI101", CourseId: "1"},
		{Id: "2", Name: "Database Management Systems", Code: "DBMS101", CourseId: "1"},
		{Id: "3", Name: "Web Development", Code: "WEB101", CourseId: "1"},
	}
	student := models.Student{Id: "1", Subjects: []string{"1", "2"}}
	records := []models.AttendanceRecord{
		rec("2025-01-10", "1", "1", models.StatusPresent),
		rec("2025-01-11", "1", "1", models.StatusAbsent),
		// Subject 3 is not in the student's set and must not appear.
		rec("2025-01-10", "3", "1", models.StatusPresent),
	}

	summaries := SubjectSummaries(subjects, records, student)
	require.Len(t, summaries, 2)

	assert.Equal(t, "1", summaries[0].SubjectId)
	assert.Equal(t, 1, summaries[0].Present)
	assert.Equal(t, 2, summaries[0].Total)
	assert.Equal(t, 50, summaries[0].Percentage)

	// Enrolled subject with no records reports 0, not an error.
	assert.Equal(t, "2", summaries[1].SubjectId)
	assert.Zero(t, summaries[1].Total)
	assert.Zero(t, summaries[1].Percentage)
}
