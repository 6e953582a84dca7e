// Package storage wires the persistent store: one database/sql connection
// shared by the per-collection repositories.
package storage

import (
	"context"
	"database/sql"

	"github.com/aivanovs/taskkeeper/internal/server/tasks"
	"github.com/aivanovs/taskkeeper/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Tasks() tasks.Repository
}
