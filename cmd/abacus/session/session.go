// Package session carries the per-invocation settings resolved by the root
// command (logger, output format) down to the subcommands.
package session

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flarebyte/abacus/internal/output"
)

type ctxKey struct{}

// Session is built once per process in the root PersistentPreRunE.
type Session struct {
	Log    *zap.Logger
	Output output.Format
}

// Attach stores s in cmd's context.
func Attach(cmd *cobra.Command, s *Session) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, ctxKey{}, s))
}

// From returns the session attached to cmd, or a quiet text-only default when
// the command runs outside the root (tests).
func From(cmd *cobra.Command) *Session {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(ctxKey{}).(*Session); ok && s != nil {
			return s
		}
	}
	return &Session{Log: zap.NewNop(), Output: output.Text}
}
