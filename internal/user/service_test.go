package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []User {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []User{
		{ID: "user-001", Email: "admin@example.com", Name: "김관리", Role: RoleAdmin, CreatedAt: at},
		{ID: "user-002", Email: "john.admin@example.com", Name: "John Admin", Role: RoleAdmin, CreatedAt: at},
		{ID: "user-003", Email: "soyoung@example.com", Name: "이소영", Role: RoleUser, CreatedAt: at},
		{ID: "user-004", Email: "minsu.kim@example.com", Name: "김민수", Role: RoleUser, CreatedAt: at},
	}
}

func TestService_GetByID(t *testing.T) {
	t.Parallel()

	svc := NewService(NewRepository(testRoster()))

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr error
	}{
		{name: "admin", id: "user-001", want: "김관리"},
		{name: "regular", id: "user-004", want: "김민수"},
		{name: "unknown", id: "user-999", wantErr: ErrUserNotFound},
		{name: "empty id", id: "", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.GetByID(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestService_RoleFilters(t *testing.T) {
	t.Parallel()

	svc := NewService(NewRepository(testRoster()))

	admins := svc.ListAdmins()
	require.Len(t, admins, 2)
	assert.Equal(t, "user-001", admins[0].ID)
	assert.Equal(t, "user-002", admins[1].ID)

	regular := svc.ListRegular()
	require.Len(t, regular, 2)
	for _, u := range regular {
		assert.Equal(t, RoleUser, u.Role)
	}

	assert.Equal(t, len(svc.List()), len(admins)+len(regular))
	assert.Empty(t, NewService(NewRepository(nil)).ListAdmins())
}

func TestService_NameOf(t *testing.T) {
	t.Parallel()

	svc := NewService(NewRepository(testRoster()))

	assert.Equal(t, "이소영", svc.NameOf("user-003"))
	assert.Equal(t, "", svc.NameOf("user-404"))
}

func TestRepository_CopiesInput(t *testing.T) {
	t.Parallel()

	roster := testRoster()
	repo := NewRepository(roster)
	roster[0].Name = "changed"

	got := repo.GetByID("user-001")
	require.NotNil(t, got)
	assert.Equal(t, "김관리", got.Name)

	got.Name = "mutated"
	assert.Equal(t, "김관리", repo.GetByID("user-001").Name)
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
