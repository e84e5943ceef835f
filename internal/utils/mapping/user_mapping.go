package mapping

import (
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	"github.com/vinayak20130/dino-ventures-assignment/internal/models"
)

// ToModelUser converts a domain User to its model form.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:      d.UserID,
		Username:    d.Username,
		Role:        models.UserRole(d.Role),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to its domain form.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		Username:    m.Username,
		Role:        domain.UserRole(m.Role),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
