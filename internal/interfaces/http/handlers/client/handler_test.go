package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itm/internal/application/client/usecases"
	"itm/internal/application/common/dto"
	"itm/internal/interfaces/http/handlers/testutil"
	"itm/internal/shared/errors"
)

type mockCreateClientUC struct {
	got    usecases.CreateClientCommand
	result *dto.ClientDTO
	err    error
}

func (m *mockCreateClientUC) Execute(_ context.Context, cmd usecases.CreateClientCommand) (*dto.ClientDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateClientUC struct {
	got    usecases.UpdateClientCommand
	result *dto.ClientDTO
	err    error
}

func (m *mockUpdateClientUC) Execute(_ context.Context, cmd usecases.UpdateClientCommand) (*dto.ClientDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteClientUC struct {
	got usecases.DeleteClientCommand
	err error
}

func (m *mockDeleteClientUC) Execute(_ context.Context, cmd usecases.DeleteClientCommand) error {
	m.got = cmd
	return m.err
}

type mockListClientsUC struct {
	result []*dto.ClientDTO
	err    error
}

func (m *mockListClientsUC) Execute(_ context.Context) ([]*dto.ClientDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	create *mockCreateClientUC
	update *mockUpdateClientUC
	delete *mockDeleteClientUC
	list   *mockListClientsUC
}

func newTestHandler() (*Handler, testDeps) {
	deps := testDeps{
		create: &mockCreateClientUC{},
		update: &mockUpdateClientUC{},
		delete: &mockDeleteClientUC{},
		list:   &mockListClientsUC{},
	}
	return NewHandler(deps.create, deps.update, deps.delete, deps.list, testutil.NewMockLogger()), deps
}

func validBody() map[string]string {
	return map[string]string{
		"name":    "acme",
		"email":   "ops@acme.test",
		"phone":   "+33 6 12 34 56 78",
		"address": "1 Main St",
	}
}

func TestCreateClient(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, deps := newTestHandler()
		deps.create.result = &dto.ClientDTO{ID: "c1", Name: "acme"}

		c, w := testutil.NewTestContext(http.MethodPost, "/clients", validBody())
		testutil.SetAuthContext(c, "root", true)
		h.CreateClient(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, deps.create.got.Actor.IsAdmin)
		assert.Equal(t, "acme", deps.create.got.Name)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		h, deps := newTestHandler()
		deps.create.err = errors.NewNotAuthorizedError("global admin required", "not-admin")

		c, w := testutil.NewTestContext(http.MethodPost, "/clients", validBody())
		testutil.SetAuthContext(c, "alice", false)
		h.CreateClient(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "not-admin", resp.Error.Details)
	})

	t.Run("bad phone", func(t *testing.T) {
		h, _ := newTestHandler()
		body := validBody()
		body["phone"] = "call me"

		c, w := testutil.NewTestContext(http.MethodPost, "/clients", body)
		testutil.SetAuthContext(c, "root", true)
		h.CreateClient(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing address", func(t *testing.T) {
		h, _ := newTestHandler()
		body := validBody()
		delete(body, "address")

		c, w := testutil.NewTestContext(http.MethodPost, "/clients", body)
		testutil.SetAuthContext(c, "root", true)
		h.CreateClient(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUpdateClient(t *testing.T) {
	h, deps := newTestHandler()
	deps.update.err = errors.NewNotFoundError("client not found")

	c, w := testutil.NewTestContext(http.MethodPut, "/clients/missing", validBody())
	testutil.SetURLParam(c, "client", "missing")
	testutil.SetAuthContext(c, "root", true)
	h.UpdateClient(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "missing", deps.update.got.ID)
}

func TestDeleteClient(t *testing.T) {
	h, deps := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/clients/c1", nil)
	testutil.SetURLParam(c, "client", "c1")
	testutil.SetAuthContext(c, "root", true)
	h.DeleteClient(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "c1", deps.delete.got.ID)
}

func TestListClients(t *testing.T) {
	h, deps := newTestHandler()
	deps.list.result = []*dto.ClientDTO{{ID: "c1", Name: "acme"}}

	c, w := testutil.NewTestContext(http.MethodGet, "/clients", nil)
	testutil.SetAuthContext(c, "alice", false)
	h.ListClients(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"acme"`)
}
