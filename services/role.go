package services

import (
	"strings"

	"github.com/expensex/expensex-api/models"
)

// RoleConfig lists the directory users treated as admins. The directory has
// no role column, so admin status is derived on every read.
type RoleConfig struct {
	AdminEmails  []string
	AdminUserIDs []int64
}

// ClassifyRole returns admin when the email matches the allow-list
// (case-insensitively) or the id is in the id allow-list.
func ClassifyRole(email string, id int64, cfg RoleConfig) models.Role {
	if email != "" {
		for _, adminEmail := range cfg.AdminEmails {
			if strings.EqualFold(email, adminEmail) {
				return models.RoleAdmin
			}
		}
	}
	if id != 0 {
		for _, adminID := range cfg.AdminUserIDs {
			if id == adminID {
				return models.RoleAdmin
			}
		}
	}
	return models.RoleUser
}
