package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "itm/internal/application/ticket/dto"
	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	vo "itm/internal/domain/ticket/valueobjects"
	uservo "itm/internal/domain/user/valueobjects"
	"itm/internal/shared/errors"
)

func TestListProjectsUseCase_PerViewerIsAdmin(t *testing.T) {
	projectRepo := &mockProjectRepository{
		ListByMemberFunc: func(ctx context.Context, username string) ([]*project.Project, error) {
			return []*project.Project{
				testProject(t, "infra", "alice"),
				testProject(t, "web", "bob"),
			}, nil
		},
	}

	uc := NewListProjectsUseCase(projectRepo, newTestLogger())
	result, err := uc.Execute(context.Background(), ListProjectsQuery{Actor: bob})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.False(t, result[0].IsAdmin)
	assert.True(t, result[1].IsAdmin)
}

func detailFixture(t *testing.T) (*GetProjectDetailUseCase, *client.Client) {
	t.Helper()
	email, err := uservo.NewEmail("ops@acme.io")
	require.NoError(t, err)
	acme, err := client.NewClient("Acme", email, "", "")
	require.NoError(t, err)

	jan := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC)
	bobName := "bob"
	t1, err := ticket.ReconstructTicket("t-1", "Disk full", "body", vo.StatusOpen, nil, "infra", acme.ID(), jan, jan)
	require.NoError(t, err)
	t2, err := ticket.ReconstructTicket("t-2", "CPU", "", vo.StatusInProgress, &bobName, "infra", acme.ID(), jan, jan)
	require.NoError(t, err)
	t3, err := ticket.ReconstructTicket("t-3", "Net", "", vo.StatusResolved, &bobName, "infra", acme.ID(), feb, feb)
	require.NoError(t, err)

	tickets := &mockTicketRepository{
		ListByProjectFunc: func(ctx context.Context, name string) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{t1, t2, t3}, nil
		},
	}
	clients := &mockClientRepository{
		GetByIDsFunc: func(ctx context.Context, ids []string) ([]*client.Client, error) {
			return []*client.Client{acme}, nil
		},
	}
	members := newMockMembershipRepository([2]string{"infra", "alice"}, [2]string{"infra", "bob"})

	uc := NewGetProjectDetailUseCase(
		projectRepoWith(testProject(t, "infra", "alice")),
		members,
		userRepoWith(t, "alice", "bob"),
		tickets,
		clients,
		ticketdto.NewAssembler(nil),
		newTestLogger(),
	)
	return uc, acme
}

func TestGetProjectDetailUseCase_Success(t *testing.T) {
	uc, acme := detailFixture(t)

	detail, err := uc.Execute(context.Background(), GetProjectDetailQuery{Actor: bob, Name: "infra"})

	require.NoError(t, err)
	assert.Equal(t, "infra", detail.Name)
	assert.Equal(t, "alice", detail.Admin)
	assert.False(t, detail.IsAdmin)

	require.Len(t, detail.Tickets, 3)
	require.NotNil(t, detail.Tickets[0].Client)
	assert.Equal(t, acme.ID(), detail.Tickets[0].Client.ID)

	assert.Len(t, detail.Users, 2)
	assert.Equal(t, map[string]int64{"total": 3, "open": 1, "in progress": 1, "resolved": 1}, detail.Stats)
	assert.Equal(t, map[string]int64{"2024-01": 2, "2024-02": 1}, detail.MonthStats)
}

func TestGetProjectDetailUseCase_RequiresMembership(t *testing.T) {
	uc, _ := detailFixture(t)

	_, err := uc.Execute(context.Background(), GetProjectDetailQuery{Actor: root, Name: "infra"})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotAuthorized, appErr.Type)
	assert.Equal(t, "not-member", appErr.Details)
}

func TestGetProjectDetailUseCase_NotFound(t *testing.T) {
	uc, _ := detailFixture(t)

	_, err := uc.Execute(context.Background(), GetProjectDetailQuery{Actor: alice, Name: "ghost"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketStats_ZeroBuckets(t *testing.T) {
	assert.Equal(t, map[string]int64{"total": 0, "open": 0, "in progress": 0, "resolved": 0}, ticketStats(nil))
}
