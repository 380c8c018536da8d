package services

import (
	"testing"

	"github.com/expensex/expensex-api/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRole(t *testing.T) {
	cfg := RoleConfig{
		AdminEmails:  []string{"admin@example.com"},
		AdminUserIDs: []int64{42},
	}

	tests := []struct {
		name  string
		email string
		id    int64
		want  models.Role
	}{
		{name: "admin email", email: "admin@example.com", id: 1, want: models.RoleAdmin},
		{name: "admin email different case", email: "Admin@Example.COM", id: 1, want: models.RoleAdmin},
		{name: "admin id", email: "someone@example.com", id: 42, want: models.RoleAdmin},
		{name: "regular user", email: "someone@example.com", id: 7, want: models.RoleUser},
		{name: "empty email and zero id", email: "", id: 0, want: models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRole(tt.email, tt.id, cfg))
		})
	}
}

func TestClassifyRole_EmptyConfig(t *testing.T) {
	assert.Equal(t, models.RoleUser, ClassifyRole("admin@example.com", 1, RoleConfig{}))
}
