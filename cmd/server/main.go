package main

import (
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"studentdb/internal/config"
	"studentdb/internal/database"
	"studentdb/internal/handler"
	"studentdb/internal/service"
)

func main() {
	// Initialize database
	db := database.InitDB()

	// Initialize services
	studentService := service.NewStudentService(db)

	// Initialize handlers
	studentHandler := handler.NewStudentHandler(studentService)

	// Setup router
	r := mux.NewRouter()

	r.HandleFunc("/students", studentHandler.ListStudents).Methods("GET")
	r.HandleFunc("/students", studentHandler.CreateStudent).Methods("POST")
	r.HandleFunc("/students/{id}", studentHandler.DeleteStudent).Methods("DELETE")

	// Start server
	log.Println("Server running on port " + config.ServerPort)
	if err := http.ListenAndServe(":"+config.ServerPort, handlers.CORS(handlers.AllowedOrigins([]string{"http://localhost:3000"}))(r)); err != nil {
		log.Fatal("Server failed:", err)
	}
}
