package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVerifyCommand(t *testing.T) {
	cmd := NewVerifyCommand()

	assert.Equal(t, "verify", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("json"))
}

func TestVerifyInvalidConfig(t *testing.T) {
	_, stderr, err := runCommand(t, "verify", "--config", "/nonexistent/unitgen.yaml")
	assert.Error(t, err)
	assert.Contains(t, stderr, "CONFIGURATION ERROR")
}
