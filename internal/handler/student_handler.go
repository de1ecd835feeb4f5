package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"studentdb/internal/model"
	"studentdb/internal/service"
)

var sortColumns = map[string]bool{
	"id":            true,
	"name":          true,
	"grade":         true,
	"birthday":      true,
	"enrolled_date": true,
}

type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit < 1 {
		limit = 10
	}
	sortBy := query.Get("sort_by")
	if !sortColumns[sortBy] {
		sortBy = "name"
	}
	sortOrder := query.Get("sort_order")
	if sortOrder != "desc" {
		sortOrder = "asc"
	}
	name := query.Get("name")
	gradeMin, _ := strconv.Atoi(query.Get("grade_min"))
	gradeMax, _ := strconv.Atoi(query.Get("grade_max"))

	students, totalCount, totalPages, err := h.studentService.List(page, limit, sortBy, sortOrder, name, gradeMin, gradeMax)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data":       students,
		"page":       page,
		"limit":      limit,
		"total":      totalCount,
		"totalPages": totalPages,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		return
	}
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var student model.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	student.ID = 0 // the store assigns IDs

	if err := h.studentService.Create(&student); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(student); err != nil {
		return
	}
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}

	if err := h.studentService.Delete(&model.Student{ID: uint(id)}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
