package services

import (
	"Alkhabir/models"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrCaseNotFound = errors.New("case not found")

const (
	DefaultCaseLimit = 50
	MaxCaseLimit     = 200

	maxTitleRunes = 60
	untitledCase  = "Untitled Case"
)

// CaseRepository persists analyzed cases.
type CaseRepository interface {
	SaveCase(ctx context.Context, c *models.Case) (*models.Case, error)
	ListCases(ctx context.Context, userID string) ([]*models.Case, error)
	GetCase(ctx context.Context, userID, caseID string) (*models.Case, error)
	DeleteCase(ctx context.Context, userID, caseID string) error
	ListAllCases(ctx context.Context, limit int) ([]*models.Case, error)
}

// FirestoreCaseRepository stores cases under users/{uid}/cases.
type FirestoreCaseRepository struct {
	FirestoreClient *firestore.Client
}

func NewFirestoreCaseRepository(client *firestore.Client) *FirestoreCaseRepository {
	return &FirestoreCaseRepository{FirestoreClient: client}
}

func (r *FirestoreCaseRepository) cases(userID string) *firestore.CollectionRef {
	return r.FirestoreClient.Collection("users").Doc(userID).Collection("cases")
}

//save case into firebase

func (r *FirestoreCaseRepository) SaveCase(ctx context.Context, c *models.Case) (*models.Case, error) {
	caseRef := r.cases(c.UserID).NewDoc()
	if _, err := caseRef.Set(ctx, c); err != nil {
		return nil, err
	}

	saved := *c
	saved.CaseID = caseRef.ID // Firestore-generated ID
	return &saved, nil
}

func (r *FirestoreCaseRepository) ListCases(ctx context.Context, userID string) ([]*models.Case, error) {
	docs, err := r.cases(userID).OrderBy("created_at", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return decodeCases(docs)
}

func (r *FirestoreCaseRepository) GetCase(ctx context.Context, userID, caseID string) (*models.Case, error) {
	doc, err := r.cases(userID).Doc(caseID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}

	var c models.Case
	if err := doc.DataTo(&c); err != nil {
		return nil, err
	}
	c.CaseID = doc.Ref.ID
	return &c, nil
}

func (r *FirestoreCaseRepository) DeleteCase(ctx context.Context, userID, caseID string) error {
	_, err := r.cases(userID).Doc(caseID).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return ErrCaseNotFound
	}
	return err
}

// ListAllCases reads the cases of every user through a collection group
// query, used by the admin dashboard.
func (r *FirestoreCaseRepository) ListAllCases(ctx context.Context, limit int) ([]*models.Case, error) {
	docs, err := r.FirestoreClient.CollectionGroup("cases").
		OrderBy("created_at", firestore.Desc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return decodeCases(docs)
}

func decodeCases(docs []*firestore.DocumentSnapshot) ([]*models.Case, error) {
	cases := make([]*models.Case, 0, len(docs))
	for _, doc := range docs {
		var c models.Case
		if err := doc.DataTo(&c); err != nil {
			return nil, err
		}
		c.CaseID = doc.Ref.ID
		cases = append(cases, &c)
	}
	return cases, nil
}

// CaseService analyzes a case description and keeps the result in the
// caller's history.
type CaseService struct {
	Repo       CaseRepository
	Dispatcher *DispatchService
	now        func() time.Time
	log        *zap.Logger
}

func NewCaseService(repo CaseRepository, dispatcher *DispatchService, log *zap.Logger) *CaseService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CaseService{Repo: repo, Dispatcher: dispatcher, now: time.Now, log: log}
}

// AnalyzeAndSave runs an analyze dispatch and stores the normalized result.
// Dispatch errors are returned as is so callers can render the envelope.
func (s *CaseService) AnalyzeAndSave(ctx context.Context, userID string, req models.CaseRequest) (*models.Case, error) {
	description := strings.TrimSpace(req.Description)
	resp, err := s.Dispatcher.Dispatch(ctx, &models.DispatchRequest{Type: models.RequestAnalyze, Description: description})
	if err != nil {
		return nil, err
	}

	saved, err := s.Repo.SaveCase(ctx, &models.Case{
		UserID:      userID,
		Type:        models.RequestAnalyze,
		Title:       caseTitle(req.Title, description),
		Status:      models.CaseStatusCompleted,
		Description: description,
		Analysis:    resp.Analysis,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("save case: %w", err)
	}

	s.log.Info("Case saved", zap.String("user_id", userID), zap.String("case_id", saved.CaseID))
	return saved, nil
}

// caseTitle falls back to the first line of the description.
func caseTitle(title, description string) string {
	if title = strings.TrimSpace(title); title != "" {
		return title
	}
	line, _, _ := strings.Cut(description, "\n")
	line = strings.TrimSpace(line)
	if r := []rune(line); len(r) > maxTitleRunes {
		line = string(r[:maxTitleRunes])
	}
	if line == "" {
		return untitledCase
	}
	return line
}

func (s *CaseService) ListCases(ctx context.Context, userID string) ([]*models.Case, error) {
	return s.Repo.ListCases(ctx, userID)
}

func (s *CaseService) GetCase(ctx context.Context, userID, caseID string) (*models.Case, error) {
	return s.Repo.GetCase(ctx, userID, caseID)
}

func (s *CaseService) DeleteCase(ctx context.Context, userID, caseID string) error {
	if err := s.Repo.DeleteCase(ctx, userID, caseID); err != nil {
		return err
	}
	s.log.Info("Case deleted", zap.String("user_id", userID), zap.String("case_id", caseID))
	return nil
}

// ListAllCases clamps limit to (0, MaxCaseLimit], zero means DefaultCaseLimit.
func (s *CaseService) ListAllCases(ctx context.Context, limit int) ([]*models.Case, error) {
	switch {
	case limit <= 0:
		limit = DefaultCaseLimit
	case limit > MaxCaseLimit:
		limit = MaxCaseLimit
	}
	return s.Repo.ListAllCases(ctx, limit)
}
