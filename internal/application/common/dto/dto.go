// Package dto provides the public views shared across use case packages.
// No view ever carries a credential field.
package dto

import (
	"itm/internal/domain/client"
	"itm/internal/domain/user"
)

type UserDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		Username: u.Username(),
		Email:    u.Email().String(),
		IsAdmin:  u.IsAdmin(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	result := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserDTO(u))
	}
	return result
}

type ClientDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}
	return &ClientDTO{
		ID:      c.ID(),
		Name:    c.Name(),
		Email:   c.Email().String(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

func ToClientDTOs(clients []*client.Client) []*ClientDTO {
	result := make([]*ClientDTO, 0, len(clients))
	for _, c := range clients {
		result = append(result, ToClientDTO(c))
	}
	return result
}
