package order

import (
	"testing"

	"gamestore/models"
	"gamestore/schemas"

	"github.com/stretchr/testify/assert"
)

func TestAuditChangesSnapshotsTouchedFields(t *testing.T) {
	before := models.Order{Status: models.OrderPending, AdminNotes: "old note"}
	after := models.Order{Status: models.OrderProcessing, AdminNotes: "old note"}

	status := models.OrderProcessing
	notes := "verified with provider"

	oldVals, newVals := auditChanges(before, schemas.OrderUpdate{Status: &status}, after)
	assert.Equal(t, map[string]any{"status": "pending"}, oldVals)
	assert.Equal(t, map[string]any{"status": "processing"}, newVals)

	// a notes-only update must log the notes, not an empty change
	oldVals, newVals = auditChanges(before, schemas.OrderUpdate{AdminNotes: &notes}, before)
	assert.Equal(t, map[string]any{"admin_notes": "old note"}, oldVals)
	assert.Equal(t, map[string]any{"admin_notes": "verified with provider"}, newVals)

	oldVals, newVals = auditChanges(before, schemas.OrderUpdate{Status: &status, AdminNotes: &notes}, after)
	assert.Equal(t, map[string]any{"status": "pending", "admin_notes": "old note"}, oldVals)
	assert.Equal(t, map[string]any{"status": "processing", "admin_notes": "verified with provider"}, newVals)
}
