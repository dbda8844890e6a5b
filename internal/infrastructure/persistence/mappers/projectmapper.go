package mappers

import (
	"itm/internal/domain/project"
	"itm/internal/infrastructure/persistence/models"
	"itm/internal/shared/biztime"
)

type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
	ToDomainList(list []models.ProjectModel) ([]*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		Name:          p.Name(),
		AdminUsername: p.AdminUsername(),
		CreatedAt:     p.CreatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	return project.ReconstructProject(model.Name, model.AdminUsername, biztime.FromMillis(model.CreatedAt))
}

func (m *ProjectMapperImpl) ToDomainList(list []models.ProjectModel) ([]*project.Project, error) {
	projects := make([]*project.Project, 0, len(list))
	for i := range list {
		p, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
