package main

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vilanovabarber/booking-api/internal/config"
	dbpkg "github.com/vilanovabarber/booking-api/internal/db"
	"github.com/vilanovabarber/booking-api/internal/logging"
	"github.com/vilanovabarber/booking-api/internal/models"
)

// Seeds the barber roster and the service catalog. Safe to re-run: tables
// that already have rows are left alone.

func main() {
	logging.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	seedBarbers(db)
	seedServices(db)

	log.Info().Msg("seed finished")
}

func seedBarbers(db *gorm.DB) {
	var count int64
	db.Model(&models.Barber{}).Count(&count)
	if count > 0 {
		log.Info().Int64("existing", count).Msg("barbers already seeded")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("barber123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash barber password")
	}

	barbers := []models.Barber{
		{Name: "Carlos Silva", Description: "Especialista em cortes clássicos e modernos", PasswordHash: string(hash), IsActive: true},
		{Name: "João Santos", Description: "Expert em barbas e degradês", PasswordHash: string(hash), IsActive: true},
		{Name: "Pedro Oliveira", Description: "Mestre em cortes estilizados", PasswordHash: string(hash), IsActive: true},
		{Name: "Lucas Ferreira", Description: "Especialista em design de barba", PasswordHash: string(hash), IsActive: true},
	}

	if err := db.Create(&barbers).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed barbers")
	}
	log.Info().Int("count", len(barbers)).Msg("barbers seeded")
}

func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		log.Info().Int64("existing", count).Msg("services already seeded")
		return
	}

	services := []models.Service{
		{Name: "Corte Tradicional", Description: "Corte clássico com tesoura e máquina", Price: "R$ 40,00", DurationMin: 30, IsFeatured: true},
		{Name: "Corte + Barba", Description: "Corte completo com design de barba", Price: "R$ 60,00", DurationMin: 45, IsFeatured: true},
		{Name: "Barba", Description: "Aparar e modelar barba", Price: "R$ 30,00", DurationMin: 20, IsFeatured: false},
		{Name: "Degradê", Description: "Corte degradê moderno", Price: "R$ 45,00", DurationMin: 35, IsFeatured: true},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed services")
	}
	log.Info().Int("count", len(services)).Msg("services seeded")
}
