package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// dryRunDB builds SQL without a live connection and records the last
// generated query.
func dryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var lastSQL string
	err = db.Callback().Query().After("gorm:query").Register("record_sql", func(tx *gorm.DB) {
		lastSQL = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	return db, &lastSQL
}

func TestFindByIDForUpdate_EmitsRowLock(t *testing.T) {
	db, lastSQL := dryRunDB(t)
	repo := NewProductRepo(db)

	repo.FindByIDForUpdate(nil, uuid.New())

	assert.Contains(t, *lastSQL, "FOR UPDATE")
}

func TestFindByID_DoesNotLock(t *testing.T) {
	db, lastSQL := dryRunDB(t)
	repo := NewProductRepo(db)

	repo.FindByID(uuid.New())

	assert.NotContains(t, *lastSQL, "FOR UPDATE")
}
