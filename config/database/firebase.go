package database

import (
	"Alkhabir/config/environment"
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Firebase bundles the clients created from one Firebase app.
type Firebase struct {
	App       *firebase.App
	Firestore *firestore.Client
	Auth      *auth.Client
}

// InitFirebase initializes both Firestore and Auth clients from the base64
// encoded service account in the config.
func InitFirebase(ctx context.Context, cfg *environment.Config) (*Firebase, error) {
	decodedCredentials, err := base64.StdEncoding.DecodeString(cfg.FirebaseCredentials)
	if err != nil {
		return nil, fmt.Errorf("decode firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	zap.L().Info("Firebase Firestore initialized", zap.String("project_id", cfg.FirebaseProjectID))

	authClient, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("initialize firebase auth client: %w", err)
	}
	zap.L().Info("Firebase Auth initialized")

	return &Firebase{App: app, Firestore: fs, Auth: authClient}, nil
}

func (f *Firebase) Close() error {
	if f == nil || f.Firestore == nil {
		return nil
	}
	return f.Firestore.Close()
}
