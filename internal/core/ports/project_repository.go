package ports

import (
	"orgchart/internal/core/domain/model/project"
)

// ProjectRepository is a keyed store of projects, keyed by id.
// Projects are replaced by delete and re-add; there is no Update.
type ProjectRepository interface {
	Add(p *project.Project) error
	Get(id int) (*project.Project, bool)
	GetAll() []*project.Project
	Delete(id int) error
	Len() int
}
