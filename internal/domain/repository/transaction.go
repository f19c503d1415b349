package repository

import "context"

// TransactionManager defines the interface for running one unit of work against the active backend.
// This allows the use case layer to group writes without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a unit of work.
	// On relational backends, and on MongoDB when transactions are enabled, fn runs inside one
	// transaction that is rolled back if fn returns an error. On a standalone MongoDB server the
	// repositories write directly and steps already applied are not compensated.
	// Acquiring the connection is bounded by the configured acquisition timeout.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one unit of work.
// This ensures all repository operations inside Execute share the same connection or session.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ActivityRepo() ActivityRepository
	DailySummaryRepo() DailySummaryRepository
	StatsRepo() StatsRepository
}
