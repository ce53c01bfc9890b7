package domain

import (
	"time"

	"gorm.io/gorm"
)

// Model is the shared row shape for soft-deletable entities. Rows with
// DeletedAt set are excluded from every read.
type Model struct {
	ID        uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m *Model) GetID() uint64       { return m.ID }
func (m *Model) SetID(id uint64)     { m.ID = id }
func (m *Model) GetCreatedAt() time.Time { return m.CreatedAt }

func (m *Model) StampCreated(t time.Time) {
	m.CreatedAt = t
	m.UpdatedAt = t
}

func (m *Model) StampUpdated(t time.Time) { m.UpdatedAt = t }

func (m *Model) MarkDeleted(t time.Time) {
	m.DeletedAt = gorm.DeletedAt{Time: t, Valid: true}
}

func (m *Model) IsDeleted() bool { return m.DeletedAt.Valid }

// BareModel is Model without a deletion stamp, for entities the backend
// hard-deletes (vouchers).
type BareModel struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (m *BareModel) GetID() uint64           { return m.ID }
func (m *BareModel) SetID(id uint64)         { m.ID = id }
func (m *BareModel) GetCreatedAt() time.Time { return m.CreatedAt }

func (m *BareModel) StampCreated(t time.Time) {
	m.CreatedAt = t
	m.UpdatedAt = t
}

func (m *BareModel) StampUpdated(t time.Time) { m.UpdatedAt = t }
