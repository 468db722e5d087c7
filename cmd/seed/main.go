package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/repository"
	"github.com/shenikar/hospital_beds/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Демонстрационные больницы Сан-Франциско
var sampleHospitals = []models.Hospital{
	{
		Name:       "City General Hospital",
		Address:    "123 Main Street, City Center",
		Type:       models.TypeGeneral,
		Location:   &models.Location{Latitude: 37.7749, Longitude: -122.4194},
		Beds:       models.Beds{models.BedEmergency: 5, models.BedICU: 3, models.BedDelivery: 2, models.BedGeneral: 10, models.BedPediatric: 4},
		Facilities: []string{"ICU", "Emergency", "Surgery", "Radiology", "Pediatrics"},
		Contact:    models.Contact{Phone: "555-123-4567", Email: "info@citygeneral.com"},
	},
	{
		Name:       "Riverside Medical Center",
		Address:    "456 River Road, Riverside",
		Type:       models.TypeGeneral,
		Location:   &models.Location{Latitude: 37.7833, Longitude: -122.4167},
		Beds:       models.Beds{models.BedEmergency: 3, models.BedICU: 2, models.BedDelivery: 4, models.BedGeneral: 8, models.BedPediatric: 3},
		Facilities: []string{"Birth Center", "Dialysis", "Cardiology", "Neurology"},
		Contact:    models.Contact{Phone: "555-987-6543", Email: "contact@riversidemedical.com"},
	},
	{
		Name:       "Hillside Community Hospital",
		Address:    "789 Hill Avenue, Hillside",
		Type:       models.TypeCommunity,
		Location:   &models.Location{Latitude: 37.7694, Longitude: -122.4862},
		Beds:       models.Beds{models.BedEmergency: 2, models.BedICU: 1, models.BedDelivery: 1, models.BedGeneral: 15, models.BedPediatric: 2},
		Facilities: []string{"Emergency", "Orthopedics", "Physical Therapy", "Geriatrics"},
		Contact:    models.Contact{Phone: "555-456-7890", Email: "info@hillsidehospital.com"},
	},
	{
		Name:       "Eastside Health Center",
		Address:    "321 East Boulevard, Eastside",
		Type:       models.TypeGeneral,
		Location:   &models.Location{Latitude: 37.7909, Longitude: -122.4},
		Beds:       models.Beds{models.BedEmergency: 4, models.BedICU: 2, models.BedDelivery: 3, models.BedGeneral: 12, models.BedPediatric: 5},
		Facilities: []string{"ICU", "Maternity", "Oncology", "Psychiatry"},
		Contact:    models.Contact{Phone: "555-789-0123", Email: "contact@eastsidehealth.com"},
	},
	{
		Name:       "North County Medical",
		Address:    "654 North Road, North County",
		Type:       models.TypeGeneral,
		Location:   &models.Location{Latitude: 37.8044, Longitude: -122.4411},
		Beds:       models.Beds{models.BedEmergency: 6, models.BedICU: 4, models.BedDelivery: 2, models.BedGeneral: 20, models.BedPediatric: 6},
		Facilities: []string{"Trauma Center", "Burn Unit", "Cardiology", "Neurosurgery"},
		Contact:    models.Contact{Phone: "555-234-5678", Email: "info@northcountymed.com"},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel, "seed")

	ctx := context.Background()
	repo, closeStore, err := repository.Open(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer closeStore()

	created := 0
	for i := range sampleHospitals {
		hospital := sampleHospitals[i]
		hospital.Beds = hospital.Beds.Normalized()
		// У каждой демонстрационной больницы свой администратор
		adminID := fmt.Sprintf("seed-admin-%d", i+1)
		entry := log.WithFields(logrus.Fields{"name": hospital.Name, "admin_id": adminID})

		id, err := repo.Create(ctx, &hospital, adminID)
		if errors.Is(err, models.ErrAdminHasHospital) {
			entry.Info("Hospital already seeded, skipping")
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed hospital %q: %v", hospital.Name, err)
		}
		entry.WithField("hospital_id", id).Info("Added hospital")
		created++
	}

	log.WithField("created", created).Info("Database seeding completed successfully")
}
