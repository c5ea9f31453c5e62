package database

import (
	"github.com/google/uuid"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

func GetStudents(s *Store) ([]models.Student, error) {
	return List[models.Student](s, Buckets["students"])
}

func CreateStudent(s *Store, name, rollNumber, email, courseId string, subjects []string) (*models.Student, error) {
	st := models.Student{
		Id:         uuid.NewString(),
		Name:       name,
		RollNumber: rollNumber,
		Email:      email,
		CourseId:   courseId,
		Subjects:   subjects,
	}
	if err := Save(s, Buckets["students"], st.Id, st); err != nil {
		return nil, err
	}
	return &st, nil
}

func UpdateStudent(s *Store, st models.Student) error {
	return Save(s, Buckets["students"], st.Id, st)
}

func DeleteStudent(s *Store, id string) error {
	return Delete(s, Buckets["students"], id)
}

// StudentsOfSubject lists students enrolled in a subject, the roster an
// attendance marking session works against.
func StudentsOfSubject(s *Store, subjectId string) ([]models.Student, error) {
	all, err := GetStudents(s)
	if err != nil {
		return nil, err
	}

	var out []models.Student
	for _, st := range all {
		for _, sub := range st.Subjects {
			if sub == subjectId {
				out = append(out, st)
				break
			}
		}
	}
	return out, nil
}

// StudentName resolves a student id against a loaded student list, falling
// back to "Unknown" for dangling references.
func StudentName(students []models.Student, id string) string {
	for _, st := range students {
		if st.Id == id {
			return st.Name
		}
	}
	return "Unknown"
}
