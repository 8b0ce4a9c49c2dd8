package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdmins(t *testing.T) {
	cfg := Config{AdminEmails: "Admin@X.com, second@x.com ,,"}

	admins := cfg.Admins()
	require.Len(t, admins, 2)
	require.Contains(t, admins, "admin@x.com")
	require.Contains(t, admins, "second@x.com")
}

func TestAdminsEmpty(t *testing.T) {
	require.Empty(t, Config{}.Admins())
}
