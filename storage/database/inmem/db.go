// Package inmemdb provides the in-memory record store used for local
// development and tests. Every table guards its own map; primary keys are
// serial, assigned by the table itself.
package inmemdb

import (
	"sync"

	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/class"
	"github.com/trezcool/darasa/core/grade"
	"github.com/trezcool/darasa/core/notification"
	"github.com/trezcool/darasa/core/student"
)

type (
	DB struct {
		student    *studentTable
		class      *classTable
		grade      *gradeTable
		attendance *attendanceTable
		assignment *assignmentTable
		preference *preferenceTable
		emailLog   *emailLogTable
	}

	studentTable struct {
		sync.RWMutex
		table map[int]*student.Student
		pk    int
	}

	classTable struct {
		sync.RWMutex
		table map[int]*class.Class
		pk    int
	}

	gradeTable struct {
		sync.RWMutex
		table map[int]*grade.Grade
		pk    int
	}

	attendanceTable struct {
		sync.RWMutex
		table map[int]*attendance.Attendance
		pk    int
	}

	assignmentTable struct {
		sync.RWMutex
		table map[int]*assignment.Assignment
		pk    int
	}

	preferenceTable struct {
		sync.RWMutex
		table map[int]*notification.Preference
		pk    int
	}

	emailLogTable struct {
		sync.RWMutex
		table map[int]*notification.EmailMessage
		pk    int
	}
)

func Open() (*DB, error) {
	db := &DB{
		student:    &studentTable{table: make(map[int]*student.Student)},
		class:      &classTable{table: make(map[int]*class.Class)},
		grade:      &gradeTable{table: make(map[int]*grade.Grade)},
		attendance: &attendanceTable{table: make(map[int]*attendance.Attendance)},
		assignment: &assignmentTable{table: make(map[int]*assignment.Assignment)},
		preference: &preferenceTable{table: make(map[int]*notification.Preference)},
		emailLog:   &emailLogTable{table: make(map[int]*notification.EmailMessage)},
	}
	return db, nil
}
