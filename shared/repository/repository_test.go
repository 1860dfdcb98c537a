package repository_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"staysync/infras/otel/mocks"
	"staysync/internal/domains/mirror/model"
	"staysync/shared/repository"
)

func TestRepository_UpsertColumnSets(t *testing.T) {
	repo := repository.NewRepository[model.UnifiedBooking](model.EntityName, model.TableName, model.FieldID, nil, mocks.NewOtel())

	// Columns owned by other subsystems must never appear in the sync
	// writer's statement, otherwise a re-sync would null them out.
	enrichment := []string{
		"assignee_id",
		"assignee_name",
		"rating",
		"feedback_comment",
		"feedback_date",
		"client_country",
		"client_birthdate",
	}

	for _, col := range enrichment {
		assert.NotContains(t, repo.InsertColumns, col)
		assert.NotContains(t, repo.UpdateColumns, col)
	}

	assert.Contains(t, repo.InsertColumns, "guest_name")
	assert.Contains(t, repo.InsertColumns, "created_at")

	// created_at is written once and survives upserts.
	assert.NotContains(t, repo.UpdateColumns, "created_at")
	assert.Contains(t, repo.UpdateColumns, "updated_at")
	assert.Contains(t, repo.UpdateColumns, "synced_at")
}

func TestRepository_BuildUpsertQuery(t *testing.T) {
	repo := repository.NewRepository[model.UnifiedBooking](model.EntityName, model.TableName, model.FieldID, nil, mocks.NewOtel())

	query := repo.BuildUpsertQuery()

	assert.True(t, strings.HasPrefix(query, "INSERT INTO unified_bookings ("))
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET")
	assert.Contains(t, query, "guest_name = EXCLUDED.guest_name")
	assert.Contains(t, query, "price = EXCLUDED.price")

	// The primary key and the creation timestamp are never part of the
	// conflict-update set.
	assert.NotContains(t, query, "id = EXCLUDED.id")
	assert.NotContains(t, query, "created_at = EXCLUDED.created_at")
	assert.NotContains(t, query, "EXCLUDED.assignee_id")
	assert.NotContains(t, query, "EXCLUDED.rating")
}
