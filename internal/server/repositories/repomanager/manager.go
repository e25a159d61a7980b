package repomanager

import (
	"context"
	"database/sql"

	"github.com/avelichko/bookmarks/internal/dbx"
	"github.com/avelichko/bookmarks/internal/server/repositories/bookmarks"
	"github.com/avelichko/bookmarks/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a database
// handle and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Bookmarks(db dbx.DBTX) bookmarks.Repository
}
