package interpreter

import (
	"regexp"
	"strings"
	"time"
)

// reTeacherName matches a titled proper name; the honorific is part of the
// extracted name, matching how faculty records are stored.
var reTeacherName = regexp.MustCompile(`(?i:(?:dr|prof|mr|mrs|ms)\.?)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`)

// extractFaculty handles absence marking. Only relative dates are in scope
// here: an absence is reported for today or tomorrow.
func extractFaculty(msg string, now time.Time) *Action {
	name := strings.TrimSpace(reTeacherName.FindString(msg))

	var date string
	switch {
	case reToday.MatchString(msg):
		date = now.Format(dateLayout)
	case reTomorrow.MatchString(msg):
		date = now.AddDate(0, 0, 1).Format(dateLayout)
	}

	if name == "" || date == "" {
		return nil
	}
	return &Action{Name: ActionMarkTeacherAbsent, Args: MarkTeacherAbsentArgs{
		TeacherName: name,
		Date:        date,
	}}
}
