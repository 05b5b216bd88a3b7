package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/control"
)

var (
	flagTokenSubject string
	flagTokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the control API",
	Long: `Print an HS256 token signed with the control secret (control.secret in
the config or RUNNER_CONTROL_SECRET).

Examples:
  runner token
  runner token --subject obs-overlay --ttl 720h
  curl -H "Authorization: Bearer $(runner token)" -X POST localhost:8080/restart`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&flagTokenSubject, "subject", "runner", "Token subject")
	tokenCmd.Flags().DurationVar(&flagTokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRunnerConfig("", "")
	if err != nil {
		return err
	}
	token, err := control.IssueToken(cfg.Control.Secret, flagTokenSubject, flagTokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
