package stylegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bep/godartsass/v2"
)

// Compiler turns a preprocessed stylesheet into plain CSS.
type Compiler interface {
	Compile(path string) (string, error)
}

// isSass reports whether path needs compiling before extraction.
func isSass(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scss", ".sass":
		return true
	}
	return false
}

// ReadStylesheet returns the final CSS of path, compiling Sass sources with
// compiler.
func ReadStylesheet(path string, compiler Compiler) (string, error) {
	if isSass(path) {
		if compiler == nil {
			return "", fmt.Errorf("compile %s: %w", path, ErrSassUnavailable)
		}
		css, err := compiler.Compile(path)
		if err != nil {
			return "", fmt.Errorf("compile %s: %w", path, err)
		}
		return css, nil
	}

	// #nosec G304 - path comes from the user's own glob
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(content), nil
}

// SassCompiler compiles Sass with a Dart Sass binary through the embedded
// protocol. The binary is started on first use and reused until Close.
type SassCompiler struct {
	binary string

	once       sync.Once
	transpiler *godartsass.Transpiler
	startErr   error
}

var _ Compiler = (*SassCompiler)(nil)

// NewSassCompiler returns a compiler running binary ("sass" from PATH when
// empty).
func NewSassCompiler(binary string) *SassCompiler {
	return &SassCompiler{binary: binary}
}

func (s *SassCompiler) start() {
	s.transpiler, s.startErr = godartsass.Start(godartsass.Options{
		DartSassEmbeddedFilename: s.binary,
	})
	if s.startErr != nil {
		s.startErr = fmt.Errorf("%w: %v", ErrSassUnavailable, s.startErr)
	}
}

// Compile compiles the Sass file at path to CSS.
func (s *SassCompiler) Compile(path string) (string, error) {
	s.once.Do(s.start)
	if s.startErr != nil {
		return "", s.startErr
	}

	// #nosec G304 - path comes from the user's own glob
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	syntax := godartsass.SourceSyntaxSCSS
	if strings.EqualFold(filepath.Ext(path), ".sass") {
		syntax = godartsass.SourceSyntaxSASS
	}

	result, err := s.transpiler.Execute(godartsass.Args{
		Source:       string(source),
		SourceSyntax: syntax,
		IncludePaths: []string{filepath.Dir(path)},
	})
	if err != nil {
		return "", err
	}
	return result.CSS, nil
}

// Close stops the Sass process, if it was started.
func (s *SassCompiler) Close() error {
	if s.transpiler == nil {
		return nil
	}
	return s.transpiler.Close()
}
