package database

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"go.etcd.io/bbolt"

	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

var Buckets = map[string][]byte{
	"courses":       []byte("Courses"),
	"subjects":      []byte("Subjects"),
	"staff":         []byte("Staff"),
	"students":      []byte("Students"),
	"attendance":    []byte("Attendance"),
	"users":         []byte("Users"),
	"notifications": []byte("Notifications"),
	"meta":          []byte("Meta"),
}

// Init opens (or creates) the DB and seeds the default dataset.
//
// Seeding is per collection: a collection gets its defaults only when its
// bucket does not exist yet. A bucket that exists but holds no records is
// left alone, so emptying a collection does not bring the defaults back on
// the next open.
func Init(path string, lgr zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	seeded := false
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(Buckets["meta"]); err != nil {
			return err
		}

		for name, seed := range defaultData {
			if tx.Bucket(Buckets[name]) != nil {
				continue
			}
			b, err := tx.CreateBucket(Buckets[name])
			if err != nil {
				return err
			}
			for key, rec := range seed {
				data, err := json.Marshal(rec)
				if err != nil {
					return err
				}
				if err := b.Put([]byte(key), data); err != nil {
					return err
				}
			}
			if len(seed) > 0 {
				seeded = true
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	if seeded {
		lgr.Info().Str("path", path).Msg("seeded database with default data")
	}
	lgr.Info().Str("path", path).Msg("database ready")

	return &Store{db: db, lgr: lgr}, nil
}

// defaultData is the fixed bootstrap dataset, keyed collection -> id -> record.
var defaultData = map[string]map[string]any{
	"users": {
		"1": models.User{Id: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin, ProfileId: "1"},
		"2": models.User{Id: "2", Username: "staff1", Password: "staff123", Role: models.RoleStaff, ProfileId: "1"},
		"3": models.User{Id: "3", Username: "student1", Password: "student123", Role: models.RoleStudent, ProfileId: "1"},
	},
	"courses": {
		"1": models.Course{Id: "1", Name: "Information Technology", Code: "IT"},
		"2": models.Course{Id: "2", Name: "Computer Science", Code: "CS"},
	},
	"subjects": {
		"1": models.Subject{Id: "1", Name: "Artificial Intelligence", Code: "AI101", CourseId: "1", StaffId: "1"},
		"2": models.Subject{Id: "2", Name: "Database Management Systems", Code: "DBMS101", CourseId: "1", StaffId: "1"},
		"3": models.Subject{Id: "3", Name: "Web Development", Code: "WEB101", CourseId: "1"},
	},
	"staff": {
		"1": models.Staff{Id: "1", Name: "Dr. John Smith", Email: "john@example.com"},
	},
	"students": {
		"1": models.Student{Id: "1", Name: "Harshi", RollNumber: "IT001", Email: "harshi@example.com", CourseId: "1", Subjects: []string{"1", "2", "3"}},
		"2": models.Student{Id: "2", Name: "Priya Sharma", RollNumber: "IT002", Email: "priya@example.com", CourseId: "1", Subjects: []string{"1", "2"}},
	},
	"attendance":    {},
	"notifications": {},
}
