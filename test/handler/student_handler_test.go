package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studentdb/internal/handler"
	"studentdb/internal/model"
	"studentdb/internal/service"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to database")
	}
	db.AutoMigrate(&model.Student{})
	return db
}

func setupRouter(db *gorm.DB) *mux.Router {
	studentService := service.NewStudentService(db)
	studentHandler := handler.NewStudentHandler(studentService)

	r := mux.NewRouter()
	r.HandleFunc("/students", studentHandler.ListStudents).Methods("GET")
	r.HandleFunc("/students", studentHandler.CreateStudent).Methods("POST")
	r.HandleFunc("/students/{id}", studentHandler.DeleteStudent).Methods("DELETE")
	return r
}

func TestListStudents(t *testing.T) {
	db := setupTestDB()
	router := setupRouter(db)

	students := []model.Student{
		{Name: "Albert Einstein", Grade: 6},
		{Name: "Alan Turing", Grade: 11},
		{Name: "Ada Lovelace", Grade: 9},
	}
	for _, student := range students {
		db.Create(&student)
	}

	tests := []struct {
		name           string
		queryParams    map[string]string
		expectedStatus int
		expectedLen    int
		expectedFirst  string
	}{
		{"All students", map[string]string{}, http.StatusOK, 3, "Ada Lovelace"},
		{"Filter by name", map[string]string{"name": "alan"}, http.StatusOK, 1, "Alan Turing"},
		{"Filter by grade range", map[string]string{"grade_min": "9", "grade_max": "11"}, http.StatusOK, 2, "Ada Lovelace"},
		{"Pagination", map[string]string{"page": "1", "limit": "2"}, http.StatusOK, 2, "Ada Lovelace"},
		{"Sort by grade desc", map[string]string{"sort_by": "grade", "sort_order": "desc"}, http.StatusOK, 3, "Alan Turing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/students", nil)
			assert.NoError(t, err)

			q := req.URL.Query()
			for key, value := range tt.queryParams {
				q.Add(key, value)
			}
			req.URL.RawQuery = q.Encode()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var response map[string]interface{}
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&response))

			data := response["data"].([]interface{})
			assert.Len(t, data, tt.expectedLen)

			first := data[0].(map[string]interface{})
			assert.Equal(t, tt.expectedFirst, first["name"])
		})
	}
}

func TestCreateStudent(t *testing.T) {
	db := setupTestDB()
	router := setupRouter(db)

	body, _ := json.Marshal(map[string]interface{}{
		"name":  "Albert Einstein",
		"email": "albert.einstein@zurich.edu",
		"grade": 6,
	})

	req, err := http.NewRequest("POST", "/students", bytes.NewReader(body))
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created model.Student
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Albert Einstein", created.Name)

	var count int64
	db.Model(&model.Student{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateStudentBadBody(t *testing.T) {
	router := setupRouter(setupTestDB())

	req, err := http.NewRequest("POST", "/students", bytes.NewReader([]byte("not json")))
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteStudent(t *testing.T) {
	db := setupTestDB()
	router := setupRouter(db)

	student := model.Student{Name: "Albert Einstein", Grade: 6}
	db.Create(&student)

	req, err := http.NewRequest("DELETE", "/students/"+strconv.Itoa(int(student.ID)), nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)

	var count int64
	db.Model(&model.Student{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteStudentBadID(t *testing.T) {
	router := setupRouter(setupTestDB())

	req, err := http.NewRequest("DELETE", "/students/zero", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
