package database

import (
	"github.com/google/uuid"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

func GetCourses(s *Store) ([]models.Course, error) {
	return List[models.Course](s, Buckets["courses"])
}

func CreateCourse(s *Store, name, code string) (*models.Course, error) {
	c := models.Course{
		Id:   uuid.NewString(),
		Name: name,
		Code: code,
	}
	if err := Save(s, Buckets["courses"], c.Id, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func UpdateCourse(s *Store, c models.Course) error {
	return Save(s, Buckets["courses"], c.Id, c)
}

// DeleteCourse removes the course record only. Subjects and students keep
// their course id; lookups through CourseName degrade to "N/A".
func DeleteCourse(s *Store, id string) error {
	return Delete(s, Buckets["courses"], id)
}

// CourseName resolves a course id against a loaded course list, falling
// back to "N/A" for dangling references.
func CourseName(courses []models.Course, id string) string {
	for _, c := range courses {
		if c.Id == id {
			return c.Name
		}
	}
	return "N/A"
}
