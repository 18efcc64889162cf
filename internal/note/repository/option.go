package repository

// AppendOptions holds the parameters for storing a note.
type AppendOptions struct {
	ProjectID   string
	ProjectName string
	Text        string
}

// ListOptions filters List. An empty ProjectID lists every project.
type ListOptions struct {
	ProjectID string
	Limit     int // 0 means no limit
}

// Validate rejects notes without a project or text.
func (o AppendOptions) Validate() error {
	if o.ProjectID == "" {
		return ErrEmptyProjectID
	}
	if o.Text == "" {
		return ErrEmptyText
	}
	return nil
}
