// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"agritrace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CropRepoFactory provides access to crop repository within a transaction.
	CropRepoFactory interface {
		CropRepository() ports.CropRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProvenanceRepoFactory provides access to the ledger repository within a transaction.
	ProvenanceRepoFactory interface {
		ProvenanceRepository() ports.ProvenanceRepository
	}

	// DisputeRepoFactory provides access to dispute repository within a transaction.
	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	// AnchorRepoFactory provides access to anchor repository within a transaction.
	AnchorRepoFactory interface {
		AnchorRepository() ports.AnchorRepository
	}

	// CropUoW manages transactions for crop-only lifecycle operations.
	// Every crop mutation also appends a ledger entry, so the ledger
	// repository is always part of the same transaction. The order
	// repository is read-only here: withdrawal checks for active orders.
	CropUoW interface {
		TxManager
		CropRepoFactory
		OrderRepoFactory
		ProvenanceRepoFactory
	}

	// CropUoWFactory creates new crop unit of work instances.
	CropUoWFactory interface {
		Create() CropUoW
	}

	// TradeUoW manages transactions that mutate an order together with its
	// crop. Used for the coupled lifecycle operations: placing, shipping,
	// completing, cancelling, and rejecting orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cropRepo := uow.CropRepository()
	//   orderRepo := uow.OrderRepository()
	//   ledger := uow.ProvenanceRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TradeUoW interface {
		TxManager
		CropRepoFactory
		OrderRepoFactory
		ProvenanceRepoFactory
	}

	// TradeUoWFactory creates new trade unit of work instances.
	TradeUoWFactory interface {
		Create() TradeUoW
	}

	// DisputeUoW manages transactions for dispute operations. Crop and order
	// repositories are read within the same transaction for access checks.
	DisputeUoW interface {
		TxManager
		DisputeRepoFactory
		CropRepoFactory
		OrderRepoFactory
	}

	// DisputeUoWFactory creates new dispute unit of work instances.
	DisputeUoWFactory interface {
		Create() DisputeUoW
	}

	// AnchorUoW manages transactions for the periodic ledger anchoring job.
	AnchorUoW interface {
		TxManager
		ProvenanceRepoFactory
		AnchorRepoFactory
	}

	// AnchorUoWFactory creates new anchor unit of work instances.
	AnchorUoWFactory interface {
		Create() AnchorUoW
	}
)
