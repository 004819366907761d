package seeders

import (
	"log"

	"github.com/kurs-wjo/wjo_api/model"
	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.db.AutoMigrate(&model.Question{}); err != nil {
		log.Printf("Question migration failed: %v", err)
		return err
	}

	questionSeeder := NewQuestionSeeder(s.db)
	if err := questionSeeder.SeedQuestions(); err != nil {
		log.Printf("Question seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedQuestionsOnly seeds only the question bank
func (s *MainSeeder) SeedQuestionsOnly() error {
	questionSeeder := NewQuestionSeeder(s.db)
	return questionSeeder.SeedQuestions()
}
