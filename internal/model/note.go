package model

import (
	"fmt"
	"time"
)

// NoteTimeLayout is the dd/mm/yyyy HH:MM stamp prefixed to every rendered note.
const NoteTimeLayout = "02/01/2006 15:04"

// Note is an append-only annotation the manager attached to a project.
type Note struct {
	ID          int64
	ProjectID   string
	ProjectName string
	Text        string
	CreatedAt   time.Time
}

// String renders the note as "[dd/mm/yyyy HH:MM] text".
func (n Note) String() string {
	return fmt.Sprintf("[%s] %s", n.CreatedAt.Format(NoteTimeLayout), n.Text)
}
