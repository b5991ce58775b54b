package cmd

import (
	"errors"
	"fmt"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/runtime"
	"github.com/cottand/ilec/internal/log"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"path/filepath"
)

var logger = log.DefaultLogger.With("section", "cli")

var RuntimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Inspect provided runtime descriptors",
}

var ValidateCmd = &cobra.Command{
	Use:          "validate file.yaml",
	Short:        "Check that a runtime descriptor only uses primitive types",
	RunE:         runValidate,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = RuntimeCmd.PersistentFlags().IntP("log-level", "l", int(slog.LevelError), "log level")
	RuntimeCmd.AddCommand(ValidateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	sigs, err := loadDescriptor(args[0])
	if err != nil {
		return err
	}
	for _, sig := range sigs {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", sig.Name, sig.Type())
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d provided function(s) OK\n", len(sigs))
	return nil
}

// loadDescriptor reads the runtime descriptor at path, formatting checker diagnostics with their code
func loadDescriptor(path string) ([]runtime.Signature, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute path of descriptor: %w", err)
	}
	f, err := os.Open(target)
	if err != nil {
		return nil, fmt.Errorf("could not open descriptor: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	logger.Debug("loading runtime descriptor", "path", target)

	sigs, err := runtime.LoadDescriptor(f)
	var ileErr ilerr.IleError
	if errors.As(err, &ileErr) {
		return nil, fmt.Errorf("invalid runtime descriptor %s: %s", path, ilerr.FormatWithCode(ileErr))
	}
	if err != nil {
		return nil, fmt.Errorf("could not load runtime descriptor %s: %w", path, err)
	}
	return sigs, nil
}
