package firestore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// NewFirestoreClient создает клиент Firestore.
// Если задан GOOGLE_APPLICATION_CREDENTIALS и файл существует, используются его ключи,
// иначе - учетные данные по умолчанию (Cloud Run, эмулятор).
func NewFirestoreClient(ctx context.Context, projectID string, logger *logrus.Logger) (*firestore.Client, error) {
	var opts []option.ClientOption

	if credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err == nil {
			logger.WithField("credentials_file", credentialsFile).Info("Using Firestore credentials file")
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		} else {
			logger.WithField("credentials_file", credentialsFile).Warn("Credentials file not found, trying default authentication")
		}
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	logger.WithField("project_id", projectID).Info("Firestore client initialized")
	return client, nil
}
