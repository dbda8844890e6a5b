package mappers

import (
	"fmt"

	"itm/internal/domain/client"
	uservo "itm/internal/domain/user/valueobjects"
	"itm/internal/infrastructure/persistence/models"
	"itm/internal/shared/biztime"
)

type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*client.Client, error)
	ToDomainList(list []models.ClientModel) ([]*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email().String(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*client.Client, error) {
	email, err := uservo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", model.ID, err)
	}
	return client.ReconstructClient(
		model.ID,
		model.Name,
		email,
		model.Phone,
		model.Address,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *ClientMapperImpl) ToDomainList(list []models.ClientModel) ([]*client.Client, error) {
	clients := make([]*client.Client, 0, len(list))
	for i := range list {
		c, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}
