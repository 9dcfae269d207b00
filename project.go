package mesa

// TextType classifies a writing project by genre. The tag is
// informational only; no behavior depends on it.
type TextType string

// Known genre tags.
const (
	TypeConto   TextType = "conto"
	TypePoema   TextType = "poema"
	TypeCronica TextType = "crônica"
	TypeGeral   TextType = "geral"
)

// Valid reports whether t is one of the known genre tags.
func (t TextType) Valid() bool {
	switch t {
	case TypeConto, TypePoema, TypeCronica, TypeGeral:
		return true
	}
	return false
}

// DefaultWordGoal is the word goal assigned to newly created projects.
const DefaultWordGoal = 1000

// Project represents a single writing document. Timestamps are
// milliseconds since the Unix epoch so that persisted snapshots remain
// byte-compatible with workspaces written by earlier versions.
type Project struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Type      TextType `json:"type"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
	Version   int      `json:"version"`
	WordGoal  int      `json:"wordGoal,omitempty"`
}

// Validate returns an error if the project contains invalid fields.
func (p *Project) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "project ID required")
	}
	if p.Type != "" && !p.Type.Valid() {
		return Errorf(EINVALID, "unknown project type %q", p.Type)
	}
	if p.WordGoal < 0 {
		return Errorf(EINVALID, "word goal must not be negative")
	}
	if p.UpdatedAt < p.CreatedAt {
		return Errorf(EINVALID, "project updated before it was created")
	}
	return nil
}

// Clone returns a copy of the project.
func (p *Project) Clone() *Project {
	other := *p
	return &other
}

// ProjectUpdate represents fields that can be updated on a project.
// Nil fields are left unchanged.
type ProjectUpdate struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Type     *TextType `json:"type"`
	WordGoal *int      `json:"wordGoal"`
}
