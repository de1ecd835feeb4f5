package service

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"studentdb/internal/model"
)

// NameGrade is a two-column projection used by ordered reads.
type NameGrade struct {
	Name  string `json:"name"`
	Grade int    `json:"grade"`
}

// NameBirthday is the projection used by the limited oldest-student read.
type NameBirthday struct {
	Name     string    `json:"name"`
	Birthday time.Time `json:"birthday"`
}

type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// Create inserts a single student and writes the generated ID back into s.
func (s *StudentService) Create(student *model.Student) error {
	return s.db.Create(student).Error
}

// BulkInsert writes all students in one multi-row INSERT. Unlike Create, the
// generated IDs are NOT assigned back to the passed-in structs; callers that
// need them must reload the rows.
func (s *StudentService) BulkInsert(students []model.Student) error {
	if len(students) == 0 {
		return nil
	}

	var values []interface{}
	query := "INSERT INTO students (name, email, grade, birthday, enrolled_date) VALUES "

	now := time.Now()
	for i, student := range students {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?)"
		enrolled := student.EnrolledDate
		if enrolled.IsZero() {
			enrolled = now
		}
		values = append(values, student.Name, student.Email, student.Grade, student.Birthday, enrolled)
	}

	return s.db.Exec(query, values...).Error
}

// All returns every student.
func (s *StudentService) All() ([]model.Student, error) {
	var students []model.Student
	err := s.db.Find(&students).Error
	return students, err
}

// Names returns just the name column, in storage order.
func (s *StudentService) Names() ([]string, error) {
	var names []string
	err := s.db.Model(&model.Student{}).Pluck("name", &names).Error
	return names, err
}

// NamesByName returns the name column sorted ascending.
func (s *StudentService) NamesByName() ([]string, error) {
	var names []string
	err := s.db.Model(&model.Student{}).Order("name").Pluck("name", &names).Error
	return names, err
}

// GradesDesc returns name and grade for every student, highest grade first.
func (s *StudentService) GradesDesc() ([]NameGrade, error) {
	var rows []NameGrade
	err := s.db.Model(&model.Student{}).
		Select("name, grade").
		Order("grade desc").
		Scan(&rows).Error
	return rows, err
}

// TopByGrade returns name and birthday of the n highest-graded students.
func (s *StudentService) TopByGrade(n int) ([]NameBirthday, error) {
	var rows []NameBirthday
	err := s.db.Model(&model.Student{}).
		Select("name, birthday").
		Order("grade desc").
		Limit(n).
		Scan(&rows).Error
	return rows, err
}

// Count returns the number of students in the store.
func (s *StudentService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&model.Student{}).Count(&count).Error
	return count, err
}

// FilterNameGrade returns students whose name contains pattern and whose
// grade equals grade (logical AND of both predicates).
func (s *StudentService) FilterNameGrade(pattern string, grade int) ([]model.Student, error) {
	var students []model.Student
	err := s.db.
		Where("name LIKE ?", "%"+pattern+"%").
		Where("grade = ?", grade).
		Find(&students).Error
	return students, err
}

// RaiseGrades loads every student, increments the grade in memory and saves
// each row back. Equivalent in effect to RaiseGradesBulk but round-trips
// every object through the session.
func (s *StudentService) RaiseGrades() error {
	var students []model.Student
	if err := s.db.Find(&students).Error; err != nil {
		return err
	}
	for i := range students {
		students[i].Grade++
		if err := s.db.Save(&students[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// RaiseGradesBulk adds one to every grade with a single UPDATE expression,
// without loading any objects.
func (s *StudentService) RaiseGradesBulk() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.Student{}).
		UpdateColumn("grade", gorm.Expr("grade + ?", 1)).Error
}

// FirstByName returns the first student with the given name, or nil when no
// row matches.
func (s *StudentService) FirstByName(name string) (*model.Student, error) {
	var student model.Student
	err := s.db.Where("name = ?", name).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Delete removes a single loaded student.
func (s *StudentService) Delete(student *model.Student) error {
	return s.db.Delete(student).Error
}

// DeleteByName removes every student matching the name without loading them,
// and reports how many rows went away.
func (s *StudentService) DeleteByName(name string) (int64, error) {
	result := s.db.Where("name = ?", name).Delete(&model.Student{})
	return result.RowsAffected, result.Error
}

// List is the filtered, sorted, paginated read used by the HTTP surface.
func (s *StudentService) List(page, limit int, sortBy, sortOrder, name string, gradeMin, gradeMax int) ([]model.Student, int64, int, error) {
	var students []model.Student
	dbQuery := s.db.Model(&model.Student{})

	// Apply filters
	if name != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}
	if gradeMin > 0 {
		dbQuery = dbQuery.Where("grade >= ?", gradeMin)
	}
	if gradeMax > 0 {
		dbQuery = dbQuery.Where("grade <= ?", gradeMax)
	}

	// Apply sorting
	orderClause := sortBy + " " + sortOrder
	dbQuery = dbQuery.Order(orderClause)

	// Pagination
	var totalCount int64
	if err := dbQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, 0, err
	}
	if err := dbQuery.Offset((page - 1) * limit).Limit(limit).Find(&students).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))

	return students, totalCount, totalPages, nil
}
