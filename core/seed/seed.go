// Package seed populates an empty store with the demo dataset.
package seed

import (
	"context"

	"github.com/trezcool/portal/core/announcement"
	"github.com/trezcool/portal/core/attendance"
	"github.com/trezcool/portal/core/faculty"
	"github.com/trezcool/portal/core/marks"
	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/core/student"
	"github.com/trezcool/portal/core/subject"
	"github.com/trezcool/portal/core/user"
)

var Admin = user.User{
	Username: "admin",
	Password: "admin123",
	Role:     user.RoleAdmin,
	Name:     "System Administrator",
}

var Students = []student.Student{
	{ID: "STU001", Name: "Rajesh Kumar", Email: "rajesh@example.com", Phone: "9876543210", Department: "CSE", Year: "3", Username: "student1", Password: "student123"},
	{ID: "STU002", Name: "Priya Sharma", Email: "priya@example.com", Phone: "9876543211", Department: "CSE", Year: "3", Username: "student2", Password: "student123"},
	{ID: "STU003", Name: "Amit Patel", Email: "amit@example.com", Phone: "9876543212", Department: "ECE", Year: "2", Username: "student3", Password: "student123"},
	{ID: "STU004", Name: "Sneha Reddy", Email: "sneha@example.com", Phone: "9876543213", Department: "MECH", Year: "4", Username: "student4", Password: "student123"},
	{ID: "STU005", Name: "Vikram Singh", Email: "vikram@example.com", Phone: "9876543214", Department: "CIVIL", Year: "1", Username: "student5", Password: "student123"},
}

var Faculty = []faculty.Faculty{
	{ID: "FAC001", Name: "Dr. Ramesh Verma", Email: "ramesh@example.com", Phone: "9876543220", Department: "CSE", Designation: "Professor", Username: "faculty1", Password: "faculty123"},
	{ID: "FAC002", Name: "Dr. Sunita Gupta", Email: "sunita@example.com", Phone: "9876543221", Department: "ECE", Designation: "Associate Professor", Username: "faculty2", Password: "faculty123"},
	{ID: "FAC003", Name: "Prof. Anil Kumar", Email: "anil@example.com", Phone: "9876543222", Department: "MECH", Designation: "Assistant Professor", Username: "faculty3", Password: "faculty123"},
	{ID: "FAC004", Name: "Dr. Kavita Joshi", Email: "kavita@example.com", Phone: "9876543223", Department: "CIVIL", Designation: "Lecturer", Username: "faculty4", Password: "faculty123"},
}

var Subjects = []subject.Subject{
	{Code: "CS301", Name: "Data Structures", Department: "CSE", Year: "3", Credits: 4, FacultyID: "FAC001"},
	{Code: "CS302", Name: "Database Systems", Department: "CSE", Year: "3", Credits: 4, FacultyID: "FAC001"},
	{Code: "EC201", Name: "Digital Electronics", Department: "ECE", Year: "2", Credits: 4, FacultyID: "FAC002"},
	{Code: "ME401", Name: "Thermodynamics", Department: "MECH", Year: "4", Credits: 3, FacultyID: "FAC003"},
	{Code: "CE101", Name: "Engineering Mechanics", Department: "CIVIL", Year: "1", Credits: 4, FacultyID: "FAC004"},
}

// Users returns the admin followed by the login of every seeded student and faculty member.
// Seeded logins keep the password of their record.
func Users() []user.User {
	users := make([]user.User, 0, 1+len(Students)+len(Faculty))
	users = append(users, Admin)
	for _, s := range Students {
		users = append(users, user.User{Username: s.Username, Password: s.Password, Role: user.RoleStudent, ID: s.ID, Name: s.Name})
	}
	for _, f := range Faculty {
		users = append(users, user.User{Username: f.Username, Password: f.Password, Role: user.RoleFaculty, ID: f.ID, Name: f.Name})
	}
	return users
}

// Initialize writes the dataset unless the students collection already exists, even empty.
// It reports whether it did.
func Initialize(ctx context.Context, kv store.KV) (bool, error) {
	students := store.NewCollection[student.Student](kv, store.Students)
	exists, err := students.Exists(ctx)
	if err != nil || exists {
		return false, err
	}

	steps := []func() error{
		func() error { return students.Replace(ctx, Students) },
		func() error { return store.NewCollection[faculty.Faculty](kv, store.Faculty).Replace(ctx, Faculty) },
		func() error { return store.NewCollection[subject.Subject](kv, store.Subjects).Replace(ctx, Subjects) },
		func() error { return store.NewCollection[user.User](kv, store.Users).Replace(ctx, Users()) },
		func() error { return store.NewCollection[attendance.Record](kv, store.Attendance).Replace(ctx, nil) },
		func() error { return store.NewCollection[marks.Record](kv, store.Marks).Replace(ctx, nil) },
		func() error {
			return store.NewCollection[announcement.Announcement](kv, store.Announcements).Replace(ctx, nil)
		},
	}
	for _, step := range steps {
		if err = step(); err != nil {
			return false, err
		}
	}
	return true, nil
}
