package dataset

import (
	"fmt"
	"net/url"
	"time"

	"github.com/twogather/twogather/internal/user"
)

type userSeed struct {
	id        string
	email     string
	name      string
	role      user.Role
	createdAt string
	avatarBg  string
}

var userSeeds = []userSeed{
	{"user-001", "admin@example.com", "김관리", user.RoleAdmin, "2025-01-01T00:00:00Z", "0D8ABC"},
	{"user-002", "john.admin@example.com", "John Admin", user.RoleAdmin, "2025-01-02T00:00:00Z", "6366F1"},
	{"user-003", "soyoung@example.com", "이소영", user.RoleUser, "2025-02-10T08:30:00Z", "EC4899"},
	{"user-004", "minsu.kim@example.com", "김민수", user.RoleUser, "2025-03-15T14:20:00Z", "10B981"},
	{"user-005", "jiyeon@example.com", "박지연", user.RoleUser, "2025-04-05T09:15:00Z", "F59E0B"},
	{"user-006", "david.lee@example.com", "David Lee", user.RoleUser, "2025-05-20T11:45:00Z", "8B5CF6"},
	{"user-007", "sara.park@example.com", "Sara Park", user.RoleUser, "2025-06-12T16:30:00Z", "EF4444"},
	{"user-008", "junho@example.com", "최준호", user.RoleUser, "2025-07-08T10:00:00Z", "14B8A6"},
	{"user-009", "emily.kim@example.com", "Emily Kim", user.RoleUser, "2025-08-25T13:20:00Z", "F97316"},
	{"user-010", "hyunwoo@example.com", "정현우", user.RoleUser, "2025-09-18T15:40:00Z", "3B82F6"},
}

func avatarURL(name, background string) *string {
	s := fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff", url.QueryEscape(name), background)
	return &s
}

// Users returns the fixture user roster.
func Users() ([]user.User, error) {
	out := make([]user.User, 0, len(userSeeds))
	for _, s := range userSeeds {
		createdAt, err := time.Parse(time.RFC3339, s.createdAt)
		if err != nil {
			return nil, err
		}
		out = append(out, user.User{
			ID:        s.id,
			Email:     s.email,
			Name:      s.name,
			AvatarURL: avatarURL(s.name, s.avatarBg),
			Role:      s.role,
			CreatedAt: createdAt,
		})
	}
	return out, nil
}
