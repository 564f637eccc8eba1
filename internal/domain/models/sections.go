// internal/domain/models/sections.go
package models

// Dashboard section identifiers. They double as URL paths and nav keys.
const (
	SectionDashboard     = "dashboard"
	SectionTasks         = "tasks"
	SectionStaff         = "staff"
	SectionStudents      = "students"
	SectionMedia         = "media"
	SectionAnalytics     = "analytics"
	SectionNotifications = "notifications"
	SectionSettings      = "settings"
)

// Sections lists the section ids in sidebar order.
var Sections = []string{
	SectionDashboard,
	SectionTasks,
	SectionStaff,
	SectionStudents,
	SectionMedia,
	SectionAnalytics,
	SectionNotifications,
	SectionSettings,
}

// SectionTitles maps a section id to its page title.
var SectionTitles = map[string]string{
	SectionDashboard:     "Dashboard",
	SectionTasks:         "All Tasks",
	SectionStaff:         "Staff Management",
	SectionStudents:      "Student Management",
	SectionMedia:         "Media Gallery",
	SectionAnalytics:     "Analytics & Reports",
	SectionNotifications: "Notifications",
	SectionSettings:      "Settings",
}

// SectionTitle returns the page title for id, defaulting to "Dashboard".
func SectionTitle(id string) string {
	if t, ok := SectionTitles[id]; ok {
		return t
	}
	return SectionTitles[SectionDashboard]
}
