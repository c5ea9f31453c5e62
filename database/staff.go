package database

import (
	"github.com/google/uuid"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

// GetStaff lists staff with AssignedSubjects rebuilt from the subjects
// collection. Subject.StaffId is the canonical side of the relation, so the
// back-reference can never drift from it.
func GetStaff(s *Store) ([]models.Staff, error) {
	staff, err := List[models.Staff](s, Buckets["staff"])
	if err != nil {
		return nil, err
	}
	subjects, err := GetSubjects(s)
	if err != nil {
		return nil, err
	}

	bySubject := assignedIndex(subjects)
	for i := range staff {
		staff[i].AssignedSubjects = bySubject[staff[i].Id]
	}
	return staff, nil
}

func CreateStaff(s *Store, name, email string) (*models.Staff, error) {
	st := models.Staff{
		Id:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if err := Save(s, Buckets["staff"], st.Id, st); err != nil {
		return nil, err
	}
	return &st, nil
}

func UpdateStaff(s *Store, st models.Staff) error {
	return Save(s, Buckets["staff"], st.Id, st)
}

func DeleteStaff(s *Store, id string) error {
	return Delete(s, Buckets["staff"], id)
}

// assignedIndex maps staff id -> subject ids, in subject iteration order.
func assignedIndex(subjects []models.Subject) map[string][]string {
	idx := make(map[string][]string)
	for _, sub := range subjects {
		if sub.StaffId == "" {
			continue
		}
		idx[sub.StaffId] = append(idx[sub.StaffId], sub.Id)
	}
	return idx
}
