package cmd

import (
	"fmt"
	"github.com/cottand/ilec/frontend/check"
	"github.com/cottand/ilec/frontend/runtime"
	"github.com/cottand/ilec/frontend/types"
	"github.com/cottand/ilec/internal/log"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"strings"
)

var EnvCmd = &cobra.Command{
	Use:          "env",
	Short:        "Print the environment programs are checked in",
	RunE:         runEnv,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var (
	descriptorPath *string
	envLogLevel    *int
)

func init() {
	descriptorPath = EnvCmd.Flags().StringP("descriptor", "d", "", "runtime descriptor providing extra functions")
	envLogLevel = EnvCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runEnv(cmd *cobra.Command, _ []string) error {
	log.SetLevel(slog.Level(*envLogLevel))

	var sigs []runtime.Signature
	if *descriptorPath != "" {
		loaded, err := loadDescriptor(*descriptorPath)
		if err != nil {
			return err
		}
		sigs = loaded
	}
	env, err := check.InitialEnv(sigs)
	if err != nil {
		return fmt.Errorf("could not build initial environment: %w", err)
	}
	printEnv(cmd.OutOrStdout(), env)
	return nil
}

func printEnv(w io.Writer, env types.Env) {
	_, _ = fmt.Fprintln(w, "types:")
	for name, generics := range env.DeclaredTypes() {
		if len(generics) == 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s<%s>\n", name, strings.Join(generics, ", "))
	}
	_, _ = fmt.Fprintln(w, "values:")
	for name, info := range env.Values() {
		_, _ = fmt.Fprintf(w, "  %s: %v\n", name, info)
	}
}
