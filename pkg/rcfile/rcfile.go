// Package rcfile checks the RC file a test script generates with --generate-rc-file.
package rcfile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/issue-watcher/pkg/fs"
	"github.com/lerenn/issue-watcher/pkg/logger"
)

const (
	// DefaultFileName is the RC file written next to the script.
	DefaultFileName = ".testrc"
	// GenerateFlag makes the script write its RC file and exit.
	GenerateFlag = "--generate-rc-file"
	// DefaultFirstLinePrefix starts the first line of a well-formed RC file.
	DefaultFirstLinePrefix = "# Uncomment only lines you need to change."
	// DefaultLastLinePrefix starts the last line of a well-formed RC file.
	DefaultLastLinePrefix = "#TODOS_LIMIT_PER_PERSON="
	// offsetDeclaration is the script line holding the RC file offsets.
	offsetDeclaration = "declare -A TEST_RC_FILE_HEAD_OFFSET"
)

// Shape is the expected structure of the RC file.
type Shape struct {
	FirstLinePrefix string
	LastLinePrefix  string
}

// DefaultShape returns the shape of the test.sh RC file.
func DefaultShape() Shape {
	return Shape{
		FirstLinePrefix: DefaultFirstLinePrefix,
		LastLinePrefix:  DefaultLastLinePrefix,
	}
}

// Generator runs a script to produce its RC file and checks the result.
type Generator struct {
	fs     fs.FS
	logger logger.Logger
	script string
	rcFile string
}

// NewGeneratorParams holds the generator dependencies.
type NewGeneratorParams struct {
	FS     fs.FS
	Logger logger.Logger
	// Script is the path of the shell script, relative to the working directory.
	Script string
	// RCFile defaults to DefaultFileName in the script directory.
	RCFile string
}

// NewGenerator creates a new Generator.
func NewGenerator(params NewGeneratorParams) *Generator {
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	// The script runs from its own directory, so it must not stay relative
	if abs, err := filepath.Abs(params.Script); err == nil {
		params.Script = abs
	}
	if params.RCFile == "" {
		params.RCFile = filepath.Join(filepath.Dir(params.Script), DefaultFileName)
	}
	return &Generator{
		fs:     params.FS,
		logger: params.Logger,
		script: params.Script,
		rcFile: params.RCFile,
	}
}

// RCFile returns the path of the generated RC file.
func (g *Generator) RCFile() string {
	return g.rcFile
}

// CheckScript returns ErrScriptNotFound when the script is missing.
func (g *Generator) CheckScript() error {
	exists, err := g.fs.Exists(g.script)
	if err != nil {
		return fmt.Errorf("failed to check script %s: %w", g.script, err)
	}
	if !exists {
		return fmt.Errorf("%w: '%s'", ErrScriptNotFound, g.script)
	}
	return nil
}

// Generate runs the script with GenerateFlag from the script directory.
func (g *Generator) Generate(ctx context.Context) error {
	if err := g.CheckScript(); err != nil {
		return err
	}

	g.logger.Logf("Generating %s with %s", g.rcFile, g.script)
	if _, err := g.fs.RunCommand(ctx, filepath.Dir(g.script), "bash", g.script, GenerateFlag); err != nil {
		return fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return nil
}

// Validate checks the first and last lines of the RC file against shape.
func (g *Generator) Validate(shape Shape) error {
	content, err := g.fs.ReadFile(g.rcFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if !strings.HasPrefix(lines[0], shape.FirstLinePrefix) {
		return g.offsetError("start")
	}
	if !strings.HasPrefix(lines[len(lines)-1], shape.LastLinePrefix) {
		return g.offsetError("end")
	}
	return nil
}

// Cleanup removes the RC file if present.
func (g *Generator) Cleanup() error {
	return g.fs.RemoveIfExists(g.rcFile)
}

// Verify regenerates the RC file, validates it and removes it.
func (g *Generator) Verify(ctx context.Context, shape Shape) (err error) {
	if err := g.Cleanup(); err != nil {
		return err
	}
	defer func() {
		if cleanupErr := g.Cleanup(); cleanupErr != nil && err == nil {
			err = cleanupErr
		}
	}()

	if err := g.Generate(ctx); err != nil {
		return err
	}
	return g.Validate(shape)
}

func (g *Generator) offsetError(key string) error {
	return fmt.Errorf("%w: check the '%s' file, line starting with '%s' if the '%s' offset is correct",
		ErrMalformed, g.script, offsetDeclaration, key)
}
