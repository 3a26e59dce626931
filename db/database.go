package db

import (
	"fmt"
	"log"

	"github.com/beyazservis/servis-go/config"
	"github.com/beyazservis/servis-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var enumDDL = []string{
	`DO $$ BEGIN CREATE TYPE islem_durumu AS ENUM ('acik', 'parca_bekliyor', 'tamamlandi', 'iptal'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN CREATE TYPE teslim_durumu AS ENUM ('bekliyor', 'siparis_edildi', 'tamamlandi', 'fabrikada', 'odeme_bekliyor', 'teslim_edildi'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN CREATE TYPE user_rol AS ENUM ('user', 'admin', 'bayi'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
}

func createEnums() {
	for _, enum := range enumDDL {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Islem{},
		&models.Atolye{},
		&models.Teknisyen{},
		&models.Marka{},
		&models.Bayi{},
		&models.Urun{},
		&models.Montaj{},
		&models.Aksesuar{},
		&models.YaziciAyar{},
		&models.Ilce{},
		&models.Mahalle{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
