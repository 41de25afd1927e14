package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"c2hr/internal/config"
	"c2hr/internal/db"
	"c2hr/internal/model"
	"c2hr/internal/repository"
)

// Seeds a consultant, an approved demo employer, and a batch of sample job
// postings owned by that employer.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Application{},
		&model.Bookmark{},
		&model.Company{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	consultant := ensureUser(ctx, userRepo, "Platform Consultant", "consultant@c2hr.local", model.RoleConsultant)
	employer := ensureUser(ctx, userRepo, "Demo Employer", "employer@c2hr.local", model.RoleEmployer)
	if !employer.IsApproved {
		employer.IsApproved = true
		if err := userRepo.Update(ctx, employer); err != nil {
			log.Fatalf("approve demo employer: %v", err)
		}
	}
	log.Printf("seeded consultant %s and employer %s", consultant.Email, employer.Email)

	sampleJobs := []model.Job{
		{
			Title:        "Senior Software Engineer",
			Company:      "TechCorp Inc.",
			Location:     "San Francisco, CA",
			Description:  "We are looking for a Senior Software Engineer to join our dynamic team. You will be responsible for developing high-quality software solutions and working with cutting-edge technologies.",
			Requirements: []string{"5+ years of experience", "React", "Node.js", "MongoDB", "AWS"},
			Salary:       "$120,000 - $160,000",
			Type:         model.JobTypeFullTime,
		},
		{
			Title:        "Frontend Developer",
			Company:      "StartupXYZ",
			Location:     "New York, NY",
			Description:  "Join our fast-growing startup as a Frontend Developer. You will work on exciting projects using modern web technologies and contribute to our innovative products.",
			Requirements: []string{"3+ years of experience", "JavaScript", "React", "CSS", "HTML"},
			Salary:       "$80,000 - $110,000",
			Type:         model.JobTypeFullTime,
		},
		{
			Title:        "Full Stack Developer",
			Company:      "GlobalTech Solutions",
			Location:     "Austin, TX",
			Description:  "We are seeking a talented Full Stack Developer to work on our enterprise applications. You will collaborate with cross-functional teams to deliver scalable solutions.",
			Requirements: []string{"4+ years of experience", "JavaScript", "Python", "React", "Django", "PostgreSQL"},
			Salary:       "$90,000 - $130,000",
			Type:         model.JobTypeFullTime,
		},
		{
			Title:        "DevOps Engineer",
			Company:      "CloudSys Inc.",
			Location:     "Seattle, WA",
			Description:  "Looking for an experienced DevOps Engineer to manage our cloud infrastructure and CI/CD pipelines. You will work with modern cloud technologies and automation tools.",
			Requirements: []string{"3+ years of experience", "AWS", "Docker", "Kubernetes", "Jenkins", "Terraform"},
			Salary:       "$100,000 - $140,000",
			Type:         model.JobTypeFullTime,
		},
		{
			Title:        "UI/UX Designer",
			Company:      "DesignStudio Pro",
			Location:     "Los Angeles, CA",
			Description:  "Creative UI/UX Designer needed for our design team. You will create beautiful and intuitive user interfaces for web and mobile applications.",
			Requirements: []string{"3+ years of experience", "Figma", "Sketch", "Adobe XD", "Prototyping", "User Research"},
			Salary:       "$70,000 - $100,000",
			Type:         model.JobTypeFullTime,
		},
		{
			Title:        "Data Scientist",
			Company:      "DataTech Analytics",
			Location:     "Boston, MA",
			Description:  "Join our data science team to work on machine learning projects and extract insights from large datasets. You will develop predictive models and data visualizations.",
			Requirements: []string{"PhD or Masters in relevant field", "Python", "R", "Machine Learning", "SQL", "Tableau"},
			Salary:       "$110,000 - $150,000",
			Type:         model.JobTypeFullTime,
		},
	}

	count := 0
	for i := range sampleJobs {
		job := sampleJobs[i]
		job.EmployerID = employer.ID
		if err := jobRepo.Create(ctx, &job); err != nil {
			log.Printf("seed job %q: %v", job.Title, err)
			continue
		}
		count++
	}
	log.Printf("seeded %d jobs", count)
}

func ensureUser(ctx context.Context, users repository.UserRepository, name, email string, role model.Role) *model.User {
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("look up %s: %v", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := model.NewUser(name, email, string(hash), role)
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("create %s: %v", email, err)
	}
	return user
}
