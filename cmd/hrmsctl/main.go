// cmd/hrmsctl/main.go
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/opshrm/hrms/internal/auth"
	"github.com/opshrm/hrms/internal/config"
	"github.com/opshrm/hrms/internal/model"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "hrmsctl",
	Short: "hrmsctl manages the HRMS database",
	Long:  `hrmsctl is a CLI tool for migrating and seeding the HRMS database schema.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations",
	Long:  `Create or update the database schema, including the unique indexes that enforce email and assignment uniqueness.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
			log.Fatalf("Failed to create citext extension: %v", err)
		}

		// Route the many2many associations through the assignment model so
		// its composite unique index governs the join table.
		if err := db.SetupJoinTable(&model.Employee{}, "Teams", &model.TeamEmployee{}); err != nil {
			log.Fatalf("Failed to set up join table: %v", err)
		}
		if err := db.SetupJoinTable(&model.Team{}, "Employees", &model.TeamEmployee{}); err != nil {
			log.Fatalf("Failed to set up join table: %v", err)
		}

		if err := db.AutoMigrate(
			&model.Organization{},
			&model.User{},
			&model.Employee{},
			&model.Team{},
			&model.TeamEmployee{},
			&model.Log{},
		); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Migration complete")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo data",
	Long:  `Create a demo organization with a user, employees, a team and one assignment.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		hasher := auth.NewPasswordHasher(auth.DefaultPasswordConfig())
		hashedPassword, err := hasher.Hash("changeme123")
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		org := &model.Organization{Name: "Demo Org"}
		if err := db.Create(org).Error; err != nil {
			log.Fatalf("Failed to create organization: %v", err)
		}

		user := &model.User{
			Email:          "admin@demo.test",
			PasswordHash:   hashedPassword,
			Name:           "Demo Admin",
			OrganizationID: org.ID,
		}
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}

		position := "Engineer"
		employee := &model.Employee{
			Name:           "Ada Example",
			Email:          "ada@demo.test",
			Position:       &position,
			OrganizationID: org.ID,
		}
		if err := db.Create(employee).Error; err != nil {
			log.Fatalf("Failed to create employee: %v", err)
		}

		description := "Platform engineering"
		team := &model.Team{
			Name:           "Platform",
			Description:    &description,
			OrganizationID: org.ID,
		}
		if err := db.Create(team).Error; err != nil {
			log.Fatalf("Failed to create team: %v", err)
		}

		assignment := &model.TeamEmployee{
			EmployeeID: employee.ID,
			TeamID:     team.ID,
		}
		if err := db.Create(assignment).Error; err != nil {
			log.Fatalf("Failed to create assignment: %v", err)
		}

		fmt.Printf("Seeded organization %s with user %s\n", org.ID, user.Email)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hrmsctl v0.1.0")
	},
}

func openDatabase() *gorm.DB {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
