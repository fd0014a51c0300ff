// Package convert wraps the external jupyter nbconvert process.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"nbtabs/models"
)

// Runner starts an external process and waits for it. The indirection
// exists so tests can simulate conversion failures.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Converter produces one HTML file per notebook via jupyter nbconvert.
// Conversions are sequential; the only blocking operation is the external
// process itself.
type Converter struct {
	runner Runner
	logger *slog.Logger
}

func NewConverter(logger *slog.Logger) *Converter {
	return &Converter{runner: execRunner{}, logger: logger}
}

// NewConverterWithRunner is used by tests to substitute the process runner.
func NewConverterWithRunner(runner Runner, logger *slog.Logger) *Converter {
	return &Converter{runner: runner, logger: logger}
}

// OutputName derives the fragment file name for a notebook: the flattened
// parent-directory path plus the notebook base name plus the run timestamp,
// so notebooks sharing a base name across directories cannot collide.
func OutputName(notebook string, run models.RunContext) string {
	base := strings.TrimSuffix(filepath.Base(notebook), filepath.Ext(notebook))
	parent := flattenDir(filepath.Dir(notebook))
	if parent != "" {
		base = parent + "_" + base
	}
	return base + "_" + run.Timestamp + ".html"
}

func flattenDir(dir string) string {
	dir = filepath.ToSlash(filepath.Clean(dir))
	dir = strings.TrimPrefix(dir, "/")
	if dir == "." || dir == "" {
		return ""
	}
	dir = strings.ReplaceAll(dir, "/", "_")
	return strings.Trim(strings.ReplaceAll(dir, ".", ""), "_")
}

// Convert runs nbconvert for one notebook and returns the path of the
// produced HTML file. When execute is set and the process fails, it retries
// once without execution; a second failure is returned to the caller, who
// skips the notebook and continues with the rest.
func (c *Converter) Convert(ctx context.Context, notebook string, run models.RunContext, execute bool) (string, error) {
	outPath := filepath.Join(run.OutputDir, OutputName(notebook, run))

	c.logger.Info("converting notebook", "notebook", notebook, "execute", execute)
	err := c.runner.Run(ctx, "jupyter", nbconvertArgs(notebook, outPath, execute)...)
	if err != nil && execute {
		c.logger.Warn("notebook execution failed, retrying without execution",
			"notebook", notebook, "error", err)
		err = c.runner.Run(ctx, "jupyter", nbconvertArgs(notebook, outPath, false)...)
	}
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", notebook, err)
	}
	return outPath, nil
}

func nbconvertArgs(notebook, outPath string, execute bool) []string {
	args := []string{"nbconvert", "--to", "html", "--no-input", "--template", "lab"}
	if execute {
		args = append(args, "--execute")
	}
	return append(args, "--output", outPath, notebook)
}
