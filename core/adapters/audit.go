package adapters

import (
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/out"
)

func AuditRecordToWire(record *models.AuditRecord) out.AuditRecord {
	return out.AuditRecord{
		ID:        record.ID,
		Kind:      record.Kind,
		NodeID:    record.NodeID,
		Detail:    record.Detail,
		CreatedAt: record.CreatedAt,
	}
}

func AuditRecordsToWire(records []*models.AuditRecord) []out.AuditRecord {
	wireRecords := make([]out.AuditRecord, 0, len(records))
	for _, record := range records {
		wireRecords = append(wireRecords, AuditRecordToWire(record))
	}
	return wireRecords
}
