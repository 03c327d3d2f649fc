package cmd

import (
	"fmt"
	"log"

	"github.com/ceramiqa/quality-management/internal/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		var db *gorm.DB
		switch cfg.Database.Driver {
		case "sqlite":
			db, err = gorm.Open(gormSqlite.Open(cfg.Database.Source), &gorm.Config{})
		default:
			db, err = gorm.Open(gormPostgres.Open(cfg.Database.Source), &gorm.Config{})
		}
		if err != nil {
			log.Fatalf("failed to open db: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing users")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		seedUsers := []struct {
			Email      string
			FullName   string
			Department string
			Role       string
		}{
			{"admin@ceramiqa.fr", "Amina Belkacem", "Direction", auth.RoleAdmin},
			{"qualite@ceramiqa.fr", "Julien Moreau", "Qualité", auth.RoleQualityManager},
			{"controle@ceramiqa.fr", "Sofia Haddad", "Qualité", auth.RoleQualityController},
			{"production@ceramiqa.fr", "Marc Lefèvre", "Production", auth.RoleProductionManager},
			{"technicien@ceramiqa.fr", "Nadia Rousseau", "Maintenance", auth.RoleTechnician},
			{"operateur@ceramiqa.fr", "Karim Dubois", "Production", auth.RoleOperator},
		}

		for _, u := range seedUsers {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists; skipping\n", u.Email)
				continue
			}

			err := db.Exec(
				"INSERT INTO users (email, full_name, password_hash, department, role, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, true, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
				u.Email, u.FullName, string(hash), u.Department, u.Role,
			).Error
			if err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Printf("Seeded %s user: %s\n", u.Role, u.Email)
		}

		fmt.Println("Seeding complete. Default password:", password)
	},
}
