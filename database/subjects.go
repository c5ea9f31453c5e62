package database

import (
	"github.com/google/uuid"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

func GetSubjects(s *Store) ([]models.Subject, error) {
	return List[models.Subject](s, Buckets["subjects"])
}

// CreateSubject stores a new subject. staffId may be empty for an
// unassigned subject.
func CreateSubject(s *Store, name, code, courseId, staffId string) (*models.Subject, error) {
	sub := models.Subject{
		Id:       uuid.NewString(),
		Name:     name,
		Code:     code,
		CourseId: courseId,
		StaffId:  staffId,
	}
	if err := Save(s, Buckets["subjects"], sub.Id, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func UpdateSubject(s *Store, sub models.Subject) error {
	return Save(s, Buckets["subjects"], sub.Id, sub)
}

func DeleteSubject(s *Store, id string) error {
	return Delete(s, Buckets["subjects"], id)
}

// AssignSubjectStaff points a subject at a staff member (or clears the
// assignment when staffId is empty). Subject.StaffId is the only persisted
// side of the relation.
func AssignSubjectStaff(s *Store, subjectId, staffId string) error {
	sub, err := Get[models.Subject](s, Buckets["subjects"], subjectId)
	if err != nil {
		return err
	}
	sub.StaffId = staffId
	return Save(s, Buckets["subjects"], subjectId, sub)
}

func SubjectsOfCourse(s *Store, courseId string) ([]models.Subject, error) {
	all, err := GetSubjects(s)
	if err != nil {
		return nil, err
	}

	var out []models.Subject
	for _, sub := range all {
		if sub.CourseId == courseId {
			out = append(out, sub)
		}
	}
	return out, nil
}
