package main

import (
	"fmt"
	"log"
	"time"

	"studentdb/internal/database"
	"studentdb/internal/model"
	"studentdb/internal/service"
)

// A linear walkthrough of the store operations: insert, read, project,
// order, limit, count, filter, both update methods and both delete methods,
// printing the outcome of each step.
func main() {
	db := database.InitDB()
	students := service.NewStudentService(db)

	// ===================== create records =====================
	albertEinstein := &model.Student{
		Name:     "Albert Einstein",
		Email:    "albert.einstein@zurich.edu",
		Grade:    6,
		Birthday: time.Date(1879, time.March, 14, 0, 0, 0, 0, time.UTC),
	}

	// Single insert assigns the generated ID back into the struct:
	//
	//	students.Create(albertEinstein)
	//	fmt.Printf("New student ID is %d.\n", albertEinstein.ID)
	//	// New student ID is 1.

	fmt.Println(albertEinstein)
	// Student (unsaved): Albert Einstein, Grade 6

	alanTuring := &model.Student{
		Name:     "Alan Turing",
		Email:    "alan.turing@sherborne.edu",
		Grade:    11,
		Birthday: time.Date(1912, time.June, 23, 0, 0, 0, 0, time.UTC),
	}

	// Bulk insert writes both rows in one statement, but does NOT assign the
	// generated IDs back to the structs we hold. Reload if you need them.
	if err := students.BulkInsert([]model.Student{*albertEinstein, *alanTuring}); err != nil {
		log.Fatal("Bulk insert failed:", err)
	}
	fmt.Printf("New student ID is %d.\n", albertEinstein.ID)
	fmt.Printf("New student ID is %d.\n", alanTuring.ID)
	// New student ID is 0.
	// New student ID is 0.

	// ===================== read records =====================
	all, err := students.All()
	if err != nil {
		log.Fatal("Read failed:", err)
	}
	fmt.Println(all)
	// [Student 1: Albert Einstein, Grade 6 Student 2: Alan Turing, Grade 11]

	// ===================== select only certain columns =====================
	names, err := students.Names()
	if err != nil {
		log.Fatal("Projection failed:", err)
	}
	fmt.Println(names)
	// [Albert Einstein Alan Turing]

	// ===================== ordering =====================
	byName, err := students.NamesByName()
	if err != nil {
		log.Fatal("Ordering failed:", err)
	}
	fmt.Println(byName)
	// [Alan Turing Albert Einstein]

	byGradeDesc, err := students.GradesDesc()
	if err != nil {
		log.Fatal("Ordering failed:", err)
	}
	fmt.Println(byGradeDesc)
	// [{Alan Turing 11} {Albert Einstein 6}]

	// ===================== limiting =====================
	top, err := students.TopByGrade(1)
	if err != nil {
		log.Fatal("Limit failed:", err)
	}
	fmt.Println(top)
	// [{Alan Turing 1912-06-23 00:00:00 +0000 UTC}]

	// ===================== aggregation =====================
	count, err := students.Count()
	if err != nil {
		log.Fatal("Count failed:", err)
	}
	fmt.Println(count)
	// 2

	// ===================== filtering =====================
	matches, err := students.FilterNameGrade("Alan", 11)
	if err != nil {
		log.Fatal("Filter failed:", err)
	}
	for _, record := range matches {
		fmt.Println(record.Name)
	}
	// Alan Turing

	// ===================== updating: method 1, per-row =====================
	if err := students.RaiseGrades(); err != nil {
		log.Fatal("Update failed:", err)
	}
	grades, _ := students.GradesDesc()
	fmt.Println(grades)
	// [{Alan Turing 12} {Albert Einstein 7}]

	// ===================== updating: method 2, bulk expression =====================
	if err := students.RaiseGradesBulk(); err != nil {
		log.Fatal("Bulk update failed:", err)
	}
	grades, _ = students.GradesDesc()
	fmt.Println(grades)
	// [{Alan Turing 13} {Albert Einstein 8}]

	// ===================== deleting: method 1, load then delete =====================
	loaded, err := students.FirstByName("Albert Einstein")
	if err != nil {
		log.Fatal("Lookup failed:", err)
	}
	if err := students.Delete(loaded); err != nil {
		log.Fatal("Delete failed:", err)
	}

	loaded, _ = students.FirstByName("Albert Einstein")
	fmt.Println(loaded)
	// <nil>

	// ===================== deleting: method 2, bulk by predicate =====================
	if _, err := students.DeleteByName("Albert Einstein"); err != nil {
		log.Fatal("Bulk delete failed:", err)
	}
	loaded, _ = students.FirstByName("Albert Einstein")
	fmt.Println(loaded)
	// <nil>
}
