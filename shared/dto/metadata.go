package dto

import (
	"staysync/shared/constant"
	"staysync/shared/model"
	"staysync/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	SyncedAt  string `json:"synced_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
	m.SyncedAt = timezone.Format(model.SyncedAt, constant.DateFormat)
}
