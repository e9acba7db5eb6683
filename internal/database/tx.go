package database

import (
	"context"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
)

// WithinTx runs fn inside a multi-document transaction when the store was
// built with WithTransactions(true). Otherwise fn runs directly and every
// command inside it commits on its own.
//
// fn must issue its commands with the context it receives.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.transactions {
		return fn(ctx)
	}

	session, err := s.client.StartSession()
	if err != nil {
		logger.Log.Errorw("failed to start session", "error", err)
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		return nil, fn(txCtx)
	})
	if err != nil {
		logger.Log.Errorw("transaction aborted", "error", err)
	}
	return err
}

// Transactional reports whether WithinTx provides atomicity.
func (s *Store) Transactional() bool {
	return s.transactions
}
