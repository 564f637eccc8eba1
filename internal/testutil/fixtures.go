// internal/testutil/fixtures.go
package testutil

import "github.com/dalemusser/gardenadmin/internal/domain/models"

// SampleTasks returns a small task snapshot with mixed statuses.
func SampleTasks() []models.Task {
	return []models.Task{
		{
			TaskID: "t1", Status: models.TaskStatusPending,
			AICaption: "Broken sprinkler near the path", StudentName: "Asha", RegisterNumber: "21CS001",
			Location: "North Lawn", AssignedTo: "s1", CreatedAt: "2024-05-01T09:30:00",
		},
		{
			TaskID: "t2", Status: models.TaskStatusCompleted,
			StudentCaption: "Fallen branch", StudentName: "Ravi", RegisterNumber: "21ME014",
			Location: "Library", AssignedTo: "s2", CreatedAt: "2024-05-02T11:00:00", CompletedAt: "2024-05-02T15:00:00",
		},
		{
			TaskID: "t3", Status: models.TaskStatusPending,
			AICaption: "Overgrown weeds", StudentName: "Meena", RegisterNumber: "22EE007",
			Location: "Hostel garden", AssignedTo: "s1", CreatedAt: "2024-05-03T08:00:00",
		},
	}
}

// SampleStaff returns two staff members, one inactive.
func SampleStaff() []models.StaffMember {
	return []models.StaffMember{
		{StaffID: "s1", Name: "Kumar", Active: true, TaskCounts: models.TaskCounts{Total: 2, Pending: 2}, LastLogin: "2024-05-03T07:00:00"},
		{StaffID: "s2", Name: "Lakshmi", Active: false, TaskCounts: models.TaskCounts{Total: 1, Completed: 1}},
	}
}

// SampleStudents returns two students.
func SampleStudents() []models.Student {
	return []models.Student{
		{RegisterNumber: "21CS001", Name: "Asha", TotalReports: 3, LastActive: "2024-05-01T09:30:00"},
		{RegisterNumber: "21ME014", Name: "Ravi", TotalReports: 1},
	}
}

// SampleMedia returns one image and one video.
func SampleMedia() []models.MediaItem {
	return []models.MediaItem{
		{Filename: "a.jpg", Folder: "uploads", URL: "/uploads/a.jpg", Size: 2048, Type: models.MediaTypeImage},
		{Filename: "b.mp4", Folder: "completed", URL: "/completed/b.mp4", Size: 1536, Type: models.MediaTypeVideo},
	}
}
