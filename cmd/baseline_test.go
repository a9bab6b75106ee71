package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetBaselineCmd_Exists verifies getBaselineCmd returns
// a valid command.
func TestGetBaselineCmd_Exists(t *testing.T) {
	cmd := getBaselineCmd()
	require.NotNil(t, cmd, "Baseline command should exist")
	assert.Equal(t, "baseline", cmd.Use,
		"Command name should be baseline")
}

// TestGetBaselineCmd_ShortDescription verifies short
// description.
func TestGetBaselineCmd_ShortDescription(t *testing.T) {
	cmd := getBaselineCmd()

	assert.NotEmpty(t, cmd.Short,
		"Short description should not be empty")
	assert.Contains(t, cmd.Short, "majority",
		"Short description should mention majority class")
}

// TestGetBaselineCmd_LongDescription verifies long
// description.
func TestGetBaselineCmd_LongDescription(t *testing.T) {
	cmd := getBaselineCmd()

	assert.NotEmpty(t, cmd.Long,
		"Long description should not be empty")
	assert.Contains(t, cmd.Long, "accuracy",
		"Long description should mention accuracy")
	assert.Contains(t, cmd.Long, "Ties",
		"Long description should mention tie handling")
}

// TestGetBaselineCmd_HasRunE verifies run function is set.
func TestGetBaselineCmd_HasRunE(t *testing.T) {
	cmd := getBaselineCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set")
}

// TestGetBaselineCmd_InputFlag verifies --input flag exists.
func TestGetBaselineCmd_InputFlag(t *testing.T) {
	cmd := getBaselineCmd()

	flag := cmd.Flags().Lookup("input")
	require.NotNil(t, flag,
		"--input flag should exist")

	assert.Equal(t, "i", flag.Shorthand,
		"Short form should be -i")
}

// TestGetBaselineCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetBaselineCmd_IndependentInstances(t *testing.T) {
	cmd1 := getBaselineCmd()
	cmd2 := getBaselineCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")

	cmd1.Short = "test1"
	cmd2.Short = "test2"

	assert.Equal(t, "test1", cmd1.Short)
	assert.Equal(t, "test2", cmd2.Short)
}
