package repositories

import (
	"fmt"

	"github.com/yigit/unischedule/internal/db"
	"github.com/yigit/unischedule/internal/pkg/dberrors"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfessorRepository *ProfessorRepository
	RoomRepository      *RoomRepository
}

// NewRepositories initializes all repositories on a shared handle
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		ProfessorRepository: NewProfessorRepository(conn),
		RoomRepository:      NewRoomRepository(conn),
	}
}

// queryError wraps a failed query, pointing at missing migrations when a table is absent
func queryError(what string, err error) error {
	if dberrors.IsUndefinedTable(err) {
		return fmt.Errorf("error querying %s (schema not migrated?): %w", what, err)
	}
	return fmt.Errorf("error querying %s: %w", what, err)
}
