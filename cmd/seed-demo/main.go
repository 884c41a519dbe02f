package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/database"
	"github.com/campushq/campuscore-backend/internal/logger"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
	"github.com/campushq/campuscore-backend/internal/service"
)

// Seeds one faculty, one department, a handful of courses, and 50 students
// with the password "demo1234". Safe to rerun: existing rows are reused.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	academicRepo := repository.NewAcademicRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	academicService := service.NewAcademicService(academicRepo)
	courseService := service.NewCourseService(courseRepo)
	studentService := service.NewStudentService(studentRepo)

	fmt.Println("=== Seeding Demo Data ===")

	// Faculty
	var facultyID int
	err = pool.QueryRow(ctx, `SELECT id FROM faculties WHERE code = $1`, "SCI").Scan(&facultyID)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Fatal().Err(err).Msg("Failed to check existing faculty")
		}
		faculty := &model.Faculty{Name: "Faculty of Science", Code: "SCI"}
		if err := academicService.CreateFaculty(ctx, faculty); err != nil {
			log.Fatal().Err(err).Msg("Failed to create faculty")
		}
		facultyID = faculty.ID
		fmt.Printf("Created faculty with ID: %d\n", facultyID)
	} else {
		fmt.Printf("Found existing faculty with ID: %d\n", facultyID)
	}

	// Department
	var departmentID int
	err = pool.QueryRow(ctx, `SELECT id FROM departments WHERE code = $1`, "CSC").Scan(&departmentID)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Fatal().Err(err).Msg("Failed to check existing department")
		}
		department := &model.Department{FacultyID: facultyID, Name: "Computer Science", Code: "CSC"}
		if err := academicService.CreateDepartment(ctx, department); err != nil {
			log.Fatal().Err(err).Msg("Failed to create department")
		}
		departmentID = department.ID
		fmt.Printf("Created department with ID: %d\n", departmentID)
	} else {
		fmt.Printf("Found existing department with ID: %d\n", departmentID)
	}

	// Courses
	courses := []model.Course{
		{Code: "CSC101", Title: "Introduction to Computing", Units: 3, Level: 100, Semester: model.SemesterFirst},
		{Code: "CSC102", Title: "Programming Fundamentals", Units: 3, Level: 100, Semester: model.SemesterSecond},
		{Code: "CSC201", Title: "Data Structures", Units: 3, Level: 200, Semester: model.SemesterFirst},
		{Code: "CSC202", Title: "Database Systems", Units: 3, Level: 200, Semester: model.SemesterSecond},
		{Code: "CSC301", Title: "Operating Systems", Units: 4, Level: 300, Semester: model.SemesterFirst},
	}
	for i := range courses {
		courses[i].DepartmentID = departmentID
		if err := courseService.Create(ctx, &courses[i]); err != nil {
			fmt.Printf("Skipping course %s: %v\n", courses[i].Code, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed password")
	}

	names := []string{
		"Adaeze Okafor", "Bola Adeyemi", "Chinedu Eze", "Damilola Ajayi", "Emeka Obi",
		"Funmilayo Balogun", "Gbenga Oladipo", "Halima Yusuf", "Ifeoma Nwosu", "Jide Bakare",
		"Kemi Alabi", "Lanre Ogunleye", "Maryam Abubakar", "Nnamdi Okeke", "Oluchi Anyanwu",
		"Peju Akintola", "Quadri Lawal", "Rashida Bello", "Segun Afolabi", "Titi Adesanya",
		"Uche Madu", "Victor Onyema", "Wunmi Salami", "Xavier Udo", "Yetunde Oni",
		"Zainab Suleiman", "Abel Ekwueme", "Bisi Fashola", "Chioma Igwe", "Dapo Soyinka",
		"Efe Oghenekaro", "Femi Coker", "Gloria Nnaji", "Hassan Danjuma", "Ijeoma Kalu",
		"Jamil Sani", "Kelechi Ibe", "Lola Durojaiye", "Musa Garba", "Ngozi Achebe",
		"Obinna Duru", "Patience Etim", "Qudus Adewale", "Remi Ojo", "Sade Williams",
		"Tope Adebayo", "Usman Bako", "Vivian Chukwu", "Wale Osho", "Yinka Phillips",
	}

	successCount := 0
	for i, name := range names {
		level := 100 * (i%4 + 1)
		student := &model.Student{
			MatricNo:     fmt.Sprintf("CSC/2024/%04d", i+1),
			Email:        fmt.Sprintf("student%d@demo.campuscore.edu", i+1),
			Name:         name,
			Gender:       model.GenderMale,
			Level:        level,
			DepartmentID: departmentID,
			PasswordHash: string(hash),
		}
		if i%2 != 0 {
			student.Gender = model.GenderFemale
		}

		if err := studentService.Create(ctx, student); err != nil {
			fmt.Printf("Error creating student %s (%s): %v\n", student.Name, student.MatricNo, err)
		} else {
			successCount++
			if (i+1)%10 == 0 {
				fmt.Printf("Created %d students...\n", i+1)
			}
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, len(names))
}
