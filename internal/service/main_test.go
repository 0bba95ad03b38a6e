//go:build integration

package service_test

import (
	"os"
	"testing"

	"team-management-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
