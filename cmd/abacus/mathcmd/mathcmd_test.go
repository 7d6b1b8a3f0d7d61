package mathcmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarebyte/abacus/internal/arith"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOneChildPerOperation(t *testing.T) {
	names := []string{}
	for _, c := range NewCmd().Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"add", "subtract", "multiply", "divide"}, names)
}

func TestStandaloneRunIsTextOnly(t *testing.T) {
	out, err := execute(t, "subtract", "1", "0.25")
	require.NoError(t, err)
	assert.Equal(t, "1 - 0.25 = 0.75\n", out)
}

func TestSecondOperandValidatedBeforeDivide(t *testing.T) {
	_, err := execute(t, "divide", "1", "zero")
	assert.ErrorIs(t, err, arith.ErrInvalidNumber)

	_, err = execute(t, "divide", "1", "0")
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
}
