package models

import "time"

type CaseStatus string

const (
	CaseStatusPending    CaseStatus = "pending"
	CaseStatusProcessing CaseStatus = "processing"
	CaseStatusCompleted  CaseStatus = "completed"
)

// Case is one stored analysis in a user's history.
type Case struct {
	CaseID      string      `json:"case_id" firestore:"-"`
	UserID      string      `json:"user_id" firestore:"user_id"`
	Type        RequestType `json:"type" firestore:"type"`
	Title       string      `json:"title" firestore:"title"`
	Status      CaseStatus  `json:"status" firestore:"status"`
	Description string      `json:"description" firestore:"description"`
	Analysis    string      `json:"analysis" firestore:"analysis"`
	CreatedAt   time.Time   `json:"created_at" firestore:"created_at"`
}

// CaseRequest is the body of the authenticated analyze-and-save route.
// Title is optional, the first line of the description is used when empty.
type CaseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description" binding:"required"`
}

// Transcription is returned by the audio transcription route.
type Transcription struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription"`
}
