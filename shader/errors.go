package shader

import (
	"errors"
	"fmt"
)

// Stage identifies the step of program construction that failed.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageLink
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

var (
	// ErrCompile matches a CompileError for the vertex or fragment stage.
	ErrCompile = errors.New("shader compile failed")
	// ErrLink matches a CompileError for the link stage.
	ErrLink = errors.New("program link failed")
)

// CompileError carries the driver's info log verbatim.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == StageLink {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

func (e *CompileError) Is(target error) bool {
	if e.Stage == StageLink {
		return target == ErrLink
	}
	return target == ErrCompile
}

// ReadError is returned when a shader source file cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("shader file %s cannot be read: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
