package database

import (
	"context"
	"errors"
	"log"
	"time"

	"mediasocial/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TxManager runs a unit of work on one connection taken from the shared pool.
type TxManager interface {
	// WithTransaction begins a transaction, hands the bound handle to work and
	// commits when work returns nil. Any error or panic rolls back. The
	// connection goes back to the pool on every path and the error from work
	// is returned unchanged.
	WithTransaction(ctx context.Context, work func(tx *gorm.DB) error) error
}

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) WithTransaction(ctx context.Context, work func(tx *gorm.DB) error) error {
	opID := common.OpID(ctx)
	if opID == "-" {
		opID = uuid.NewString()
		ctx = common.WithOpID(ctx, opID)
	}
	start := time.Now()

	// tx.Statement.Context carries the op id into work
	err := m.db.WithContext(ctx).Transaction(work)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			log.Printf("↩ tx %s rolled back after %v: %v", opID, time.Since(start), err)
		}
		return err
	}
	return nil
}
