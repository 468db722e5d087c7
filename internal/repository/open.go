package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/shenikar/hospital_beds/internal/service"
	firestoreclient "github.com/shenikar/hospital_beds/pkg/firestore"
	"github.com/shenikar/hospital_beds/pkg/postgres"
	"github.com/sirupsen/logrus"
)

// Open подключает хранилище, выбранное в STORE_BACKEND.
// Возвращаемая функция закрывает соединения.
func Open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.HospitalRepository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir, log); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info("Successfully connected to PostgreSQL")
		return NewPostgresHospitalRepository(dbpool, cfg.StoreTimeout), dbpool.Close, nil

	case config.BackendFirestore:
		client, err := firestoreclient.NewFirestoreClient(ctx, cfg.FirestoreProjectID, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.WithError(err).Warn("Failed to close Firestore client")
			}
		}
		return NewFirestoreHospitalRepository(client, cfg.StoreTimeout), closeFn, nil

	case config.BackendMemory:
		log.Warn("Using in-memory store, data is lost on restart")
		return NewMemoryHospitalRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
