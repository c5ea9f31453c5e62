// Package analytics derives chart and dashboard data from attendance
// records. Everything here is pure computation over loaded snapshots; no
// storage access, no side effects.
package analytics

import (
	"math"
	"sort"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
	"github.com/harshitaS19/Student-Attendance-management-System/helper"
)

// StudentPercentage is the share of present records among all of the
// student's records, in [0, 100]. A student with no records is 0, not an
// error.
func StudentPercentage(records []models.AttendanceRecord, studentId string) float64 {
	present, total := 0, 0
	for _, rec := range records {
		if rec.StudentId != studentId {
			continue
		}
		total++
		if rec.Status == models.StatusPresent {
			present++
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(present) / float64(total)
}

// Round converts a percentage to its presentation value. Threshold checks
// must use the unrounded percentage.
func Round(pct float64) int {
	return int(math.Round(pct))
}

// SubjectSummary is one row of the student's subject-wise attendance view.
type SubjectSummary struct {
	SubjectId  string
	Name       string
	Code       string
	Present    int
	Total      int
	Percentage int
}

// SubjectSummaries breaks a student's attendance down by enrolled subject.
func SubjectSummaries(subjects []models.Subject, records []models.AttendanceRecord, student models.Student) []SubjectSummary {
	var out []SubjectSummary
	for _, sub := range subjects {
		if !helper.Contains(student.Subjects, sub.Id) {
			continue
		}

		present, total := 0, 0
		for _, rec := range records {
			if rec.StudentId != student.Id || rec.SubjectId != sub.Id {
				continue
			}
			total++
			if rec.Status == models.StatusPresent {
				present++
			}
		}

		pct := 0
		if total > 0 {
			pct = Round(100 * float64(present) / float64(total))
		}
		out = append(out, SubjectSummary{
			SubjectId:  sub.Id,
			Name:       sub.Name,
			Code:       sub.Code,
			Present:    present,
			Total:      total,
			Percentage: pct,
		})
	}
	return out
}

// CoursePoint is one bar of the course overview chart.
type CoursePoint struct {
	CourseId   string
	CourseName string
	Percentage float64
}

// CourseOverview averages per-student percentages across each course's
// enrolled students, skipping students with no records. A course with no
// qualifying students reports 0.
//
// A student's percentage spans all of their records regardless of subject,
// not just the course's own subjects.
func CourseOverview(courses []models.Course, students []models.Student, records []models.AttendanceRecord) []CoursePoint {
	out := make([]CoursePoint, 0, len(courses))
	for _, course := range courses {
		sum, counted := 0.0, 0
		for _, st := range students {
			if st.CourseId != course.Id {
				continue
			}
			has := false
			for _, rec := range records {
				if rec.StudentId == st.Id {
					has = true
					break
				}
			}
			if !has {
				continue
			}
			sum += StudentPercentage(records, st.Id)
			counted++
		}

		pct := 0.0
		if counted > 0 {
			pct = sum / float64(counted)
		}
		out = append(out, CoursePoint{
			CourseId:   course.Id,
			CourseName: course.Name,
			Percentage: pct,
		})
	}
	return out
}

// TrendPoint is one point of the cumulative attendance line chart.
type TrendPoint struct {
	Date       string
	Percentage int
}

// Trend builds the student's cumulative present-ratio series: one point per
// record in ascending date order, each covering every record up to and
// including it. Records sharing a date keep their incoming order.
func Trend(records []models.AttendanceRecord, studentId string) []TrendPoint {
	var own []models.AttendanceRecord
	for _, rec := range records {
		if rec.StudentId == studentId {
			own = append(own, rec)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Date < own[j].Date
	})

	out := make([]TrendPoint, 0, len(own))
	present := 0
	for i, rec := range own {
		if rec.Status == models.StatusPresent {
			present++
		}
		out = append(out, TrendPoint{
			Date:       rec.Date,
			Percentage: Round(100 * float64(present) / float64(i+1)),
		})
	}
	return out
}
