package database

import (
	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
	"github.com/harshitaS19/Student-Attendance-management-System/helper"
)

// EnrollStudentSubject adds a subject to a student's enrollment set.
// Already-enrolled is a no-op. Whether the subject belongs to the
// student's course is not checked.
func EnrollStudentSubject(s *Store, studentId, subjectId string) error {
	return updateStudent(s, studentId, func(st *models.Student) {
		if !helper.Contains(st.Subjects, subjectId) {
			st.Subjects = append(st.Subjects, subjectId)
		}
	})
}

func UnenrollStudentSubject(s *Store, studentId, subjectId string) error {
	return updateStudent(s, studentId, func(st *models.Student) {
		st.Subjects = helper.Remove(st.Subjects, subjectId)
	})
}

func updateStudent(s *Store, studentId string, mutate func(*models.Student)) error {
	st, err := Get[models.Student](s, Buckets["students"], studentId)
	if err != nil {
		return err
	}
	mutate(st)
	return Save(s, Buckets["students"], studentId, st)
}
