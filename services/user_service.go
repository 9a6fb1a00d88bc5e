package services

import (
	"Alkhabir/models"
	"strings"

	"firebase.google.com/go/auth"
)

type UserService struct {
	AdminEmails []string
}

func NewUserService(adminEmails []string) *UserService {
	return &UserService{AdminEmails: adminEmails}
}

//profile service

// Profile builds the caller profile from a verified Firebase token. The
// admin role comes from the "role" custom claim or the ADMIN_EMAILS list.
func (s *UserService) Profile(token *auth.Token) models.Profile {
	email, _ := token.Claims["email"].(string)
	profile := models.Profile{UID: token.UID, Email: email, Role: models.RoleClient}

	if role, _ := token.Claims["role"].(string); role == string(models.RoleAdmin) {
		profile.Role = models.RoleAdmin
		return profile
	}
	for _, admin := range s.AdminEmails {
		if email != "" && strings.EqualFold(admin, email) {
			profile.Role = models.RoleAdmin
			break
		}
	}
	return profile
}
