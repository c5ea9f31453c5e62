package database

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/harshitaS19/Student-Attendance-management-System/analytics"
	"github.com/harshitaS19/Student-Attendance-management-System/database/models"
)

const (
	// LowAttendanceThreshold is the minimum acceptable attendance
	// percentage. Compared against the unrounded value.
	LowAttendanceThreshold = 75.0

	lowAttendanceTitle = "Low Attendance Alert"

	// alertWindow is the rolling wall-clock window within which a second
	// low-attendance warning for the same user is suppressed.
	alertWindow = 24 * time.Hour
)

// nowFunc is swapped out in tests to move the clock.
var nowFunc = time.Now

func CreateNotification(s *Store, userId, title, message string, typ models.NotificationType) (*models.Notification, error) {
	n := models.Notification{
		Id:        uuid.NewString(),
		UserId:    userId,
		Title:     title,
		Message:   message,
		Type:      typ,
		Read:      false,
		CreatedAt: nowFunc(),
	}
	if err := Save(s, Buckets["notifications"], n.Id, n); err != nil {
		return nil, err
	}
	return &n, nil
}

// UserNotifications lists one user's notifications, newest first.
func UserNotifications(s *Store, userId string) ([]models.Notification, error) {
	all, err := List[models.Notification](s, Buckets["notifications"])
	if err != nil {
		return nil, err
	}

	var out []models.Notification
	for _, n := range all {
		if n.UserId == userId {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func UnreadCount(s *Store, userId string) (int, error) {
	notifs, err := UserNotifications(s, userId)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range notifs {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func MarkNotificationRead(s *Store, id string) error {
	n, err := Get[models.Notification](s, Buckets["notifications"], id)
	if err != nil {
		return err
	}
	n.Read = true
	return Save(s, Buckets["notifications"], id, n)
}

// MarkAllNotificationsRead sets read on every notification of the given
// user, including ones already read. Other users are not touched.
func MarkAllNotificationsRead(s *Store, userId string) error {
	notifs, err := UserNotifications(s, userId)
	if err != nil {
		return err
	}
	for _, n := range notifs {
		n.Read = true
		if err := Save(s, Buckets["notifications"], n.Id, n); err != nil {
			return err
		}
	}
	return nil
}

func DeleteNotification(s *Store, id string) error {
	return Delete(s, Buckets["notifications"], id)
}

// EvaluateAndNotify checks a student's aggregate attendance and appends a
// low-attendance warning for their login when it is below threshold.
//
// Safe to call on every trigger: a student with no records or acceptable
// attendance is a no-op, a missing student login is a silent no-op, and a
// warning created within the last 24 hours suppresses the next one, so at
// most one warning per student lands in any rolling 24-hour window.
func EvaluateAndNotify(s *Store, studentId string) error {
	records, err := StudentAttendance(s, studentId)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	pct := analytics.StudentPercentage(records, studentId)
	if pct >= LowAttendanceThreshold {
		return nil
	}

	user, err := UserForStudent(s, studentId)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	notifs, err := UserNotifications(s, user.Id)
	if err != nil {
		return err
	}
	cutoff := nowFunc().Add(-alertWindow)
	for _, n := range notifs {
		if n.Type == models.NotifWarning && n.Title == lowAttendanceTitle && n.CreatedAt.After(cutoff) {
			return nil
		}
	}

	message := fmt.Sprintf(
		"Your attendance has dropped to %d%%. Please attend classes regularly to meet the minimum 75%% requirement.",
		analytics.Round(pct),
	)
	if _, err := CreateNotification(s, user.Id, lowAttendanceTitle, message, models.NotifWarning); err != nil {
		return err
	}
	s.lgr.Warn().
		Str("student_id", studentId).
		Int("percentage", analytics.Round(pct)).
		Msg("low attendance warning created")
	return nil
}
