package database

import (
	"log"
	"os"
	"time"

	"isms-center/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	err = DB.AutoMigrate(
		&models.Tenant{},
		&models.CorporateGovernance{},
		&models.User{},
		&models.Asset{},
		&models.Control{},
		&models.Document{},
		&models.Risk{},
		&models.Supplier{},
		&models.Incident{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultTenantAndAdmin()
}

// bootstrap tenant + admin so a fresh install is usable; admin credentials
// come from env only
func seedDefaultTenantAndAdmin() {
	var tenantCount int64
	if err := DB.Model(&models.Tenant{}).Count(&tenantCount).Error; err != nil {
		log.Printf("failed to check tenants: %v", err)
		return
	}

	var tenant models.Tenant
	if tenantCount == 0 {
		tenant = models.Tenant{
			Code:     "root",
			Name:     "Default Organization",
			IsActive: true,
		}
		if err := DB.Create(&tenant).Error; err != nil {
			log.Printf("failed to create default tenant: %v", err)
			return
		}
		log.Printf("created default tenant: %s", tenant.Name)
	} else {
		if err := DB.Order("id asc").First(&tenant).Error; err != nil {
			log.Printf("failed to load default tenant: %v", err)
			return
		}
	}

	var adminCount int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&adminCount).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if adminCount > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin@isms.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		TenantID:     tenant.ID,
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", username)
}
