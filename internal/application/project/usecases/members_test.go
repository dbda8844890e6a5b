package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itm/internal/shared/errors"
)

func TestAddMemberUseCase_Success(t *testing.T) {
	projectRepo := projectRepoWith(testProject(t, "infra", "alice"))
	members := newMockMembershipRepository([2]string{"infra", "alice"})

	uc := NewAddMemberUseCase(projectRepo, members, userRepoWith(t, "alice", "bob"), &mockTxManager{}, newTestLogger())
	cmd := AddMemberCommand{Actor: alice, ProjectName: "infra", Username: "bob"}

	require.NoError(t, uc.Execute(context.Background(), cmd))
	assert.True(t, members.members["infra"]["bob"])

	// Idempotent.
	require.NoError(t, uc.Execute(context.Background(), cmd))
	assert.Len(t, members.members["infra"], 2)
}

func TestAddMemberUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		project string
		target  string
		errType errors.ErrorType
	}{
		{name: "project missing", actor: "alice", project: "ghost", target: "bob", errType: errors.ErrorTypeNotFound},
		{name: "user missing", actor: "alice", project: "infra", target: "nobody", errType: errors.ErrorTypeNotFound},
		{name: "not project admin", actor: "bob", project: "infra", target: "bob", errType: errors.ErrorTypeNotAuthorized},
		{name: "global admin", actor: "root", project: "infra", target: "bob", errType: errors.ErrorTypeNotAuthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := newMockMembershipRepository([2]string{"infra", "alice"})
			uc := NewAddMemberUseCase(projectRepoWith(testProject(t, "infra", "alice")), members, userRepoWith(t, "alice", "bob"), &mockTxManager{}, newTestLogger())

			err := uc.Execute(context.Background(), AddMemberCommand{Actor: principal(tt.actor), ProjectName: tt.project, Username: tt.target})

			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
			assert.False(t, members.members["infra"]["bob"])
		})
	}
}

func TestRemoveMemberUseCase_Success(t *testing.T) {
	members := newMockMembershipRepository([2]string{"infra", "alice"}, [2]string{"infra", "bob"})
	uc := NewRemoveMemberUseCase(projectRepoWith(testProject(t, "infra", "alice")), members, userRepoWith(t, "alice", "bob"), &mockTxManager{}, newTestLogger())

	require.NoError(t, uc.Execute(context.Background(), RemoveMemberCommand{Actor: alice, ProjectName: "infra", Username: "bob"}))

	assert.False(t, members.members["infra"]["bob"])
	assert.True(t, members.members["infra"]["alice"])
}

func TestRemoveMemberUseCase_AdminCannotRemoveThemself(t *testing.T) {
	members := newMockMembershipRepository([2]string{"infra", "alice"})
	members.RemoveFunc = func(ctx context.Context, projectName, username string) error {
		t.Fatal("Remove must not be reached")
		return nil
	}
	uc := NewRemoveMemberUseCase(projectRepoWith(testProject(t, "infra", "alice")), members, userRepoWith(t, "alice"), &mockTxManager{}, newTestLogger())

	err := uc.Execute(context.Background(), RemoveMemberCommand{Actor: alice, ProjectName: "infra", Username: "alice"})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeSelfRemovalForbidden))
	assert.True(t, members.members["infra"]["alice"])
}

func TestRemoveMemberUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		project string
		target  string
		errType errors.ErrorType
	}{
		{name: "project missing", actor: "alice", project: "ghost", target: "bob", errType: errors.ErrorTypeNotFound},
		{name: "user missing", actor: "alice", project: "infra", target: "nobody", errType: errors.ErrorTypeNotFound},
		{name: "not project admin", actor: "bob", project: "infra", target: "bob", errType: errors.ErrorTypeNotAuthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := newMockMembershipRepository([2]string{"infra", "alice"}, [2]string{"infra", "bob"})
			uc := NewRemoveMemberUseCase(projectRepoWith(testProject(t, "infra", "alice")), members, userRepoWith(t, "alice", "bob"), &mockTxManager{}, newTestLogger())

			err := uc.Execute(context.Background(), RemoveMemberCommand{Actor: principal(tt.actor), ProjectName: tt.project, Username: tt.target})

			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
			assert.True(t, members.members["infra"]["bob"])
		})
	}
}
