// File: collect.go
// Title: Pipeline Collector
// Description: Turns raw command text into a structured Pipeline. The
//              text is split into words honoring quoting, then the word
//              stream is walked for pipe separators, redirections, and a
//              trailing background marker. Quoted words are never
//              operators.

package pipeline

import (
	"strings"

	ionerr "github.com/amw-zero/ion/core/error"
	"github.com/amw-zero/ion/shell/words"
)

// Collect parses command text into a Pipeline. The caller passes the
// already-trimmed remainder of a command line.
func Collect(text string) (*Pipeline, error) {
	fields, err := words.SplitWords(text)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ionerr.New("empty pipeline").
			WithCode(ionerr.CodeSyntax).
			WithOperation("pipeline.Collect").
			WithDetail("text", text)
	}

	p := &Pipeline{}

	// A trailing unquoted & backgrounds the whole pipeline.
	if last := fields[len(fields)-1]; last.Text == "&" && !last.Quoted {
		p.Background = true
		fields = fields[:len(fields)-1]
		if len(fields) == 0 {
			return nil, ionerr.New("nothing to run in background").
				WithCode(ionerr.CodeSyntax).
				WithOperation("pipeline.Collect").
				WithDetail("text", text)
		}
	}

	var current Job

	flush := func() error {
		if current.Command == "" {
			return ionerr.New("empty command in pipeline").
				WithCode(ionerr.CodeSyntax).
				WithOperation("pipeline.Collect").
				WithDetail("text", text)
		}
		p.Jobs = append(p.Jobs, current)
		current = Job{}
		return nil
	}

	for i := 0; i < len(fields); i++ {
		field := fields[i]

		switch {
		case !field.Quoted && strings.HasPrefix(field.Text, "|"):
			if field.Text != "|" {
				return nil, ionerr.Newf("unexpected token: %s", field.Text).
					WithCode(ionerr.CodeSyntax).
					WithOperation("pipeline.Collect").
					WithDetail("text", text)
			}
			if err := flush(); err != nil {
				return nil, err
			}

		case !field.Quoted && strings.HasPrefix(field.Text, "<"):
			if p.Stdin != nil {
				return nil, ionerr.New("duplicate input redirection").
					WithCode(ionerr.CodeSyntax).
					WithOperation("pipeline.Collect").
					WithDetail("text", text)
			}
			file := strings.TrimPrefix(field.Text, "<")
			if file == "" {
				i++
				if i >= len(fields) {
					return nil, ionerr.New("missing input redirection target").
						WithCode(ionerr.CodeSyntax).
						WithOperation("pipeline.Collect").
						WithDetail("text", text)
				}
				file = fields[i].Text
			}
			p.Stdin = &RedirectFrom{File: file}

		case !field.Quoted && strings.HasPrefix(field.Text, ">"):
			if p.Stdout != nil {
				return nil, ionerr.New("duplicate output redirection").
					WithCode(ionerr.CodeSyntax).
					WithOperation("pipeline.Collect").
					WithDetail("text", text)
			}
			appendMode := strings.HasPrefix(field.Text, ">>")
			file := strings.TrimPrefix(strings.TrimPrefix(field.Text, ">"), ">")
			if file == "" {
				i++
				if i >= len(fields) {
					return nil, ionerr.New("missing output redirection target").
						WithCode(ionerr.CodeSyntax).
						WithOperation("pipeline.Collect").
						WithDetail("text", text)
				}
				file = fields[i].Text
			}
			p.Stdout = &RedirectTo{File: file, Append: appendMode}

		default:
			if current.Command == "" {
				current.Command = field.Text
			} else {
				current.Args = append(current.Args, field.Text)
			}
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return p, nil
}
