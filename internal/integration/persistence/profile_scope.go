// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"gorm.io/gorm"

	"github.com/household-budget/backend/internal/domain/valueobject"
)

// profileScope applies the household matching rule to a profile filter.
// "Ambos" matches every record, and a member filter also matches shared
// "Casa" records.
func profileScope(query *gorm.DB, filter *valueobject.Profile) *gorm.DB {
	if filter == nil || *filter == valueobject.ProfileBoth {
		return query
	}
	return query.Where("profile IN ?", []string{
		string(*filter),
		string(valueobject.ProfileShared),
	})
}
