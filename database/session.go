package database

import (
	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

// The current user lives in the meta bucket under a fixed key, separate
// from the entity collections but in the same substrate.
const currentUserKey = "currentUser"

// Login matches username and password against the users collection (plain
// equality, first match wins) and persists the match as the current user.
// A failed login returns nil and leaves the current user untouched.
func Login(s *Store, username, password string) (*models.User, error) {
	users, err := GetUsers(s)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			if err := Save(s, Buckets["meta"], currentUserKey, u); err != nil {
				return nil, err
			}
			s.lgr.Info().Str("username", username).Msg("user logged in")
			return &u, nil
		}
	}
	return nil, nil
}

func Logout(s *Store) error {
	return Delete(s, Buckets["meta"], currentUserKey)
}

// CurrentUser returns the persisted current user, or nil when nobody is
// logged in.
func CurrentUser(s *Store) (*models.User, error) {
	if !Exists(s, Buckets["meta"], currentUserKey) {
		return nil, nil
	}
	return Get[models.User](s, Buckets["meta"], currentUserKey)
}
