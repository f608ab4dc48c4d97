package bfgo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
)

// Build compiles the Go source file at srcPath into the executable outPath.
func Build(ctx context.Context, goBin string, srcPath string, outPath string) error {
	if goBin == "" {
		goBin = "go"
	}
	srcPath, err := filepath.Abs(srcPath)
	if err != nil {
		return err
	}
	outPath, err = filepath.Abs(outPath)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, goBin, "build", "-o", outPath, srcPath)
	cmd.Dir = filepath.Dir(srcPath)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s build %s: %w\n%s", goBin, srcPath, err, bytes.TrimSpace(output.Bytes()))
	}
	return nil
}
