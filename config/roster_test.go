package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleRoster = `
users:
  - id: 1
    username: admin
    password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
    email: admin@example.com
    isAdmin: true
  - id: 2
    username: Luis Glez
    email: luis@example.com
  - id: 3
    username: David Glez
    email: david@example.com
`

func TestParseRoster(t *testing.T) {
	users, err := ParseRoster([]byte(sampleRoster))
	require.NoError(t, err)
	require.Len(t, users, 3)

	require.True(t, users[0].IsAdmin)
	require.NotEmpty(t, users[0].PasswordHash)
	require.Equal(t, int64(2), users[1].ID)
	require.Equal(t, "Luis Glez", users[1].Username)
	require.False(t, users[1].IsAdmin)
	require.Equal(t, "david@example.com", users[2].Email)
}

func TestParseRosterRejectsDuplicateIDs(t *testing.T) {
	_, err := ParseRoster([]byte(`
users:
  - {id: 1, username: admin, isAdmin: true}
  - {id: 1, username: other}
`))
	require.Error(t, err)
}

func TestParseRosterRequiresOneAdmin(t *testing.T) {
	_, err := ParseRoster([]byte(`
users:
  - {id: 1, username: a}
  - {id: 2, username: b}
`))
	require.Error(t, err)

	_, err = ParseRoster([]byte(`
users:
  - {id: 1, username: a, isAdmin: true}
  - {id: 2, username: b, isAdmin: true}
`))
	require.Error(t, err)
}

func TestParseRosterEmpty(t *testing.T) {
	_, err := ParseRoster([]byte("users: []"))
	require.Error(t, err)
}
