// File: collect_test.go
// Title: Pipeline Collector Tests
// Description: Tests command text parsing into pipelines, covering pipes,
//              redirections, backgrounding, and failure modes.

package pipeline

import (
	"reflect"
	"testing"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Pipeline
	}{
		{
			name:  "single command",
			input: "ls",
			want: &Pipeline{
				Jobs: []Job{{Command: "ls"}},
			},
		},
		{
			name:  "command with args",
			input: "test -e /tmp",
			want: &Pipeline{
				Jobs: []Job{{Command: "test", Args: []string{"-e", "/tmp"}}},
			},
		},
		{
			name:  "two stage pipe",
			input: "cat notes.txt | wc -l",
			want: &Pipeline{
				Jobs: []Job{
					{Command: "cat", Args: []string{"notes.txt"}},
					{Command: "wc", Args: []string{"-l"}},
				},
			},
		},
		{
			name:  "quoted argument keeps spaces",
			input: `grep 'hello world' notes.txt`,
			want: &Pipeline{
				Jobs: []Job{{Command: "grep", Args: []string{"hello world", "notes.txt"}}},
			},
		},
		{
			name:  "quoted pipe is not a separator",
			input: `echo "a | b"`,
			want: &Pipeline{
				Jobs: []Job{{Command: "echo", Args: []string{"a | b"}}},
			},
		},
		{
			name:  "output redirection",
			input: "ls > files.txt",
			want: &Pipeline{
				Jobs:   []Job{{Command: "ls"}},
				Stdout: &RedirectTo{File: "files.txt"},
			},
		},
		{
			name:  "append redirection attached",
			input: "ls >>files.txt",
			want: &Pipeline{
				Jobs:   []Job{{Command: "ls"}},
				Stdout: &RedirectTo{File: "files.txt", Append: true},
			},
		},
		{
			name:  "input redirection",
			input: "wc -l < notes.txt",
			want: &Pipeline{
				Jobs:  []Job{{Command: "wc", Args: []string{"-l"}}},
				Stdin: &RedirectFrom{File: "notes.txt"},
			},
		},
		{
			name:  "background marker",
			input: "sleep 10 &",
			want: &Pipeline{
				Jobs:       []Job{{Command: "sleep", Args: []string{"10"}}},
				Background: true,
			},
		},
		{
			name:  "quoted pipe word is an argument",
			input: `echo '|'`,
			want: &Pipeline{
				Jobs: []Job{{Command: "echo", Args: []string{"|"}}},
			},
		},
		{
			name:  "escaped pipe word is an argument",
			input: `echo \|`,
			want: &Pipeline{
				Jobs: []Job{{Command: "echo", Args: []string{"|"}}},
			},
		},
		{
			name:  "quoted angle bracket is not a redirection",
			input: `echo '>' out`,
			want: &Pipeline{
				Jobs: []Job{{Command: "echo", Args: []string{">", "out"}}},
			},
		},
		{
			name:  "quoted ampersand does not background",
			input: `echo '&'`,
			want: &Pipeline{
				Jobs: []Job{{Command: "echo", Args: []string{"&"}}},
			},
		},
		{
			name:  "brace alternatives expand to arguments",
			input: "echo {a,b}.txt",
			want: &Pipeline{
				Jobs: []Job{{Command: "echo", Args: []string{"a.txt", "b.txt"}}},
			},
		},
		{
			name:  "pipe with both redirections",
			input: "sort < in.txt | uniq > out.txt",
			want: &Pipeline{
				Jobs: []Job{
					{Command: "sort"},
					{Command: "uniq"},
				},
				Stdin:  &RedirectFrom{File: "in.txt"},
				Stdout: &RedirectTo{File: "out.txt"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collect(tt.input)
			if err != nil {
				t.Fatalf("Collect(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Collect(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollectErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty text", ""},
		{"whitespace only", "   "},
		{"leading pipe", "| wc"},
		{"trailing pipe", "ls |"},
		{"double pipe", "ls || wc"},
		{"bare background marker", "&"},
		{"missing redirect target", "ls >"},
		{"missing input target", "wc <"},
		{"unterminated quote", "echo 'oops"},
		{"duplicate output redirection", "ls > a > b"},
		{"duplicate append redirection", "ls > a >> b"},
		{"duplicate input redirection", "wc < a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Collect(tt.input); err == nil {
				t.Errorf("Collect(%q) error = nil, want error", tt.input)
			}
		})
	}
}

func TestPipelineString(t *testing.T) {
	p := &Pipeline{
		Jobs: []Job{
			{Command: "cat", Args: []string{"in.txt"}},
			{Command: "wc", Args: []string{"-l"}},
		},
		Stdout:     &RedirectTo{File: "out.txt", Append: true},
		Background: true,
	}

	want := "cat in.txt | wc -l >> out.txt &"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
