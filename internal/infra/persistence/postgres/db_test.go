package postgres

import (
	"fmt"
	"testing"

	"monsoon/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB opens a uniquely named in-memory SQLite database and migrates
// the full schema. Each test gets its own database, so tests stay isolated
// even when run in parallel.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PolicyModel{},
		&model.WeatherRiskModel{},
		&model.PolicyApplicationModel{},
		&model.ContactInquiryModel{},
	))

	return db
}
