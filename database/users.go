package database

import (
	"github.com/google/uuid"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

func GetUsers(s *Store) ([]models.User, error) {
	return List[models.User](s, Buckets["users"])
}

// CreateUser stores a new login. Passwords are kept as plain text; the
// seeded credentials and the login check both depend on literal equality.
func CreateUser(s *Store, username, password string, role models.Role, profileId string) (*models.User, error) {
	u := models.User{
		Id:        uuid.NewString(),
		Username:  username,
		Password:  password,
		Role:      role,
		ProfileId: profileId,
	}
	if err := Save(s, Buckets["users"], u.Id, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func DeleteUser(s *Store, id string) error {
	return Delete(s, Buckets["users"], id)
}

// UserForStudent finds the student-role login whose profile points at the
// given student, or nil when no such login exists.
func UserForStudent(s *Store, studentId string) (*models.User, error) {
	users, err := GetUsers(s)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Role == models.RoleStudent && u.ProfileId == studentId {
			return &u, nil
		}
	}
	return nil, nil
}
