package database

import (
	"fmt"
	"sort"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
	"github.com/harshitaS19/Student-Attendance-management-System/helper"
)

// Attendance records are keyed "date:subjectId:studentId" so that the
// natural key replaces in place, a (date, subject) session is one prefix
// block, and full scans come back in ascending date order.
func attendanceKey(date, subjectId, studentId string) string {
	return fmt.Sprintf("%s:%s:%s", date, subjectId, studentId)
}

func sessionPrefix(date, subjectId string) string {
	return fmt.Sprintf("%s:%s:", date, subjectId)
}

func GetAttendance(s *Store) ([]models.AttendanceRecord, error) {
	return List[models.AttendanceRecord](s, Buckets["attendance"])
}

// StudentAttendance scans all records and filters by student. The key
// layout favors session lookups; per-student reads pay the scan.
func StudentAttendance(s *Store, studentId string) ([]models.AttendanceRecord, error) {
	all, err := GetAttendance(s)
	if err != nil {
		return nil, err
	}

	var out []models.AttendanceRecord
	for _, rec := range all {
		if rec.StudentId == studentId {
			out = append(out, rec)
		}
	}
	return out, nil
}

// SessionAttendance returns the records of one marking session, for the
// history view.
func SessionAttendance(s *Store, date, subjectId string) ([]models.AttendanceRecord, error) {
	return ListByPrefix[models.AttendanceRecord](s, Buckets["attendance"], sessionPrefix(date, subjectId))
}

// SaveSessionAttendance replaces the whole (date, subject) block with the
// given statuses and re-evaluates the low-attendance alert for every
// student in the session. Records for other dates and subjects are not
// touched. Re-saving the same session overwrites the earlier marking
// instead of duplicating it.
func SaveSessionAttendance(s *Store, date, subjectId string, statuses map[string]models.AttendanceStatus) error {
	if _, err := helper.ParseDay(date); err != nil {
		return fmt.Errorf("bad session date %q: %w", date, err)
	}

	if err := DeleteByPrefix(s, Buckets["attendance"], sessionPrefix(date, subjectId)); err != nil {
		return err
	}

	studentIds := make([]string, 0, len(statuses))
	for studentId := range statuses {
		studentIds = append(studentIds, studentId)
	}
	sort.Strings(studentIds)

	for _, studentId := range studentIds {
		rec := models.AttendanceRecord{
			Date:      date,
			StudentId: studentId,
			SubjectId: subjectId,
			Status:    statuses[studentId],
		}
		if err := Save(s, Buckets["attendance"], attendanceKey(date, subjectId, studentId), rec); err != nil {
			return err
		}
	}

	for _, studentId := range studentIds {
		if err := EvaluateAndNotify(s, studentId); err != nil {
			return err
		}
	}
	return nil
}
