package models

import "time"

// AttendanceStatus is the status recorded for one student in one session.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// Role controls which dashboard a user lands on.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// NotificationType drives the styling of a notification in the bell menu.
type NotificationType string

const (
	NotifWarning NotificationType = "warning"
	NotifInfo    NotificationType = "info"
	NotifSuccess NotificationType = "success"
)

type Course struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type Subject struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	CourseId string `json:"course_id"`
	// StaffId is the canonical assignment; Staff.AssignedSubjects is
	// derived from it on read.
	StaffId string `json:"staff_id,omitempty"`
}

type Staff struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// AssignedSubjects is computed from Subject.StaffId on every read,
	// never persisted.
	AssignedSubjects []string `json:"-"`
}

type Student struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	RollNumber string   `json:"roll_number"`
	Email      string   `json:"email"`
	CourseId   string   `json:"course_id"`
	Subjects   []string `json:"subjects"`
}

// AttendanceRecord is one student's status for one subject on one day.
// (Date, StudentId, SubjectId) is the natural key; Date is "2006-01-02".
type AttendanceRecord struct {
	Date      string           `json:"date"`
	StudentId string           `json:"student_id"`
	SubjectId string           `json:"subject_id"`
	Status    AttendanceStatus `json:"status"`
}

type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	// ProfileId points at the Staff or Student record backing this login.
	ProfileId string `json:"profile_id"`
}

type Notification struct {
	Id        string           `json:"id"`
	UserId    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
