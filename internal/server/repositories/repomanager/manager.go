// Package repomanager bundles the metadata repositories for one backend
// behind a single connect/ping/close lifecycle, so the application wires a
// manager instead of process-global store clients.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/repositories/files"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/users"
)

// RepositoryManager provides access to the repositories of one metadata
// backend plus its connection lifecycle.
type RepositoryManager interface {
	Users() users.Repository
	Files() files.Repository

	// Ping probes the backend connection; used by the liveness endpoint.
	Ping(ctx context.Context) error

	Close(ctx context.Context) error
}
