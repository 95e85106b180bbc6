package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/student"
)

func Test_studentApi_crud(t *testing.T) {
	app := setup(t)

	// create
	rec := app.request(t, http.MethodPost, "/v1/students", map[string]interface{}{
		"first_name":   "Alice",
		"last_name":    "Smith",
		"parent_name":  "Jane Smith",
		"parent_email": "Jane.Smith@Example.com",
		"grade_level":  5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var stu student.Student
	decode(t, rec, &stu)
	assert.NotZero(t, stu.ID)
	assert.Equal(t, "jane.smith@example.com", stu.ParentEmail)
	assert.Equal(t, student.StatusActive, stu.Status)
	assert.False(t, stu.EnrollmentDate.IsZero())

	// validation
	rec = app.request(t, http.MethodPost, "/v1/students", map[string]interface{}{
		"first_name": "Bob",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// list
	rec = app.request(t, http.MethodGet, "/v1/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var students []student.Student
	decode(t, rec, &students)
	assert.Len(t, students, 1)

	// retrieve
	rec = app.request(t, http.MethodGet, "/v1/students/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = app.request(t, http.MethodGet, "/v1/students/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// update
	rec = app.request(t, http.MethodPut, "/v1/students/1", map[string]interface{}{
		"first_name":   "Alice",
		"last_name":    "Smith-Jones",
		"parent_name":  "Jane Smith",
		"parent_email": "jane.smith@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &stu)
	assert.Equal(t, "Smith-Jones", stu.LastName)

	// destroy
	rec = app.request(t, http.MethodDelete, "/v1/students/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = app.request(t, http.MethodGet, "/v1/students/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_studentApi_destroyMultiple(t *testing.T) {
	app := setup(t)
	s1 := createStudent(t, app.studentRepo, "Alice", "Smith", "alice.parent@example.com")
	s2 := createStudent(t, app.studentRepo, "Bob", "Jones", "bob.parent@example.com")
	keep := createStudent(t, app.studentRepo, "Carol", "White", "carol.parent@example.com")

	rec := app.request(t, http.MethodDelete, "/v1/students", map[string]interface{}{
		"ids": []int{s1.ID, s2.ID},
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.request(t, http.MethodGet, "/v1/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var students []student.Student
	decode(t, rec, &students)
	require.Len(t, students, 1)
	assert.Equal(t, keep.ID, students[0].ID)
}
