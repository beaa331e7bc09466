// File: pipeline.go
// Title: Pipeline Structures
// Description: Defines the structured representation of one command line:
//              an ordered chain of jobs connected by pipes, optional input
//              and output redirections, and a background marker.

package pipeline

import (
	"strings"
)

// Job is a single command within a pipeline
type Job struct {
	Command string
	Args    []string
}

// String renders the job as it would be typed
func (j Job) String() string {
	if len(j.Args) == 0 {
		return j.Command
	}
	return j.Command + " " + strings.Join(j.Args, " ")
}

// RedirectFrom describes stdin redirection for the first job
type RedirectFrom struct {
	File string
}

// RedirectTo describes stdout redirection for the last job
type RedirectTo struct {
	File   string
	Append bool
}

// Pipeline is the structured form of one command line
type Pipeline struct {
	Jobs       []Job
	Stdin      *RedirectFrom
	Stdout     *RedirectTo
	Background bool
}

// String renders the pipeline as it would be typed
func (p *Pipeline) String() string {
	if p == nil {
		return ""
	}

	parts := make([]string, 0, len(p.Jobs))
	for _, job := range p.Jobs {
		parts = append(parts, job.String())
	}
	out := strings.Join(parts, " | ")

	if p.Stdin != nil {
		out += " < " + p.Stdin.File
	}
	if p.Stdout != nil {
		if p.Stdout.Append {
			out += " >> " + p.Stdout.File
		} else {
			out += " > " + p.Stdout.File
		}
	}
	if p.Background {
		out += " &"
	}

	return out
}
