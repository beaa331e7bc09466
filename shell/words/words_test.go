// File: words_test.go
// Title: Argument Word Splitter Tests
// Description: Tests word splitting across quoting, escaping, and
//              whitespace handling, including the error cases.

package words

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain words",
			input: "1 2 3",
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t  ",
			want:  nil,
		},
		{
			name:  "collapses runs of whitespace",
			input: "a   b\t\tc",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "single quotes preserve spaces",
			input: "one 'two three' four",
			want:  []string{"one", "two three", "four"},
		},
		{
			name:  "double quotes preserve spaces",
			input: `one "two three" four`,
			want:  []string{"one", "two three", "four"},
		},
		{
			name:  "single quotes inside double quotes",
			input: `"it's fine"`,
			want:  []string{"it's fine"},
		},
		{
			name:  "double quotes inside single quotes",
			input: `'say "hi"'`,
			want:  []string{`say "hi"`},
		},
		{
			name:  "escaped space joins words",
			input: `one\ two three`,
			want:  []string{"one two", "three"},
		},
		{
			name:  "escaped quote is literal",
			input: `don\'t`,
			want:  []string{"don't"},
		},
		{
			name:  "backslash inside single quotes is literal",
			input: `'a\b'`,
			want:  []string{`a\b`},
		},
		{
			name:  "empty quoted word survives",
			input: `a '' b`,
			want:  []string{"a", "", "b"},
		},
		{
			name:  "adjacent quoted segments concatenate",
			input: `pre'mid'post`,
			want:  []string{"premidpost"},
		},
		{
			name:  "pipes and redirects are ordinary words",
			input: "cat in.txt | wc -l > out.txt",
			want:  []string{"cat", "in.txt", "|", "wc", "-l", ">", "out.txt"},
		},
		{
			name:  "brace alternatives expand",
			input: "{a,b}",
			want:  []string{"a", "b"},
		},
		{
			name:  "brace alternatives keep prefix and suffix",
			input: "img_{one,two}.png",
			want:  []string{"img_one.png", "img_two.png"},
		},
		{
			name:  "empty brace alternative survives",
			input: "x{a,}",
			want:  []string{"xa", "x"},
		},
		{
			name:  "brace group without comma is literal",
			input: "{alone}",
			want:  []string{"{alone}"},
		},
		{
			name:  "unterminated brace group is literal",
			input: "{a,b",
			want:  []string{"{a,b"},
		},
		{
			name:  "quoted braces are literal",
			input: "'{a,b}'",
			want:  []string{"{a,b}"},
		},
		{
			name:  "process expansion stays one word",
			input: "echo $(ls -l /tmp)",
			want:  []string{"echo", "$(ls -l /tmp)"},
		},
		{
			name:  "nested process expansion stays one word",
			input: "$(echo $(date) now)",
			want:  []string{"$(echo $(date) now)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if err != nil {
				t.Fatalf("Split(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitWordsQuoting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Word
	}{
		{
			name:  "plain words are unquoted",
			input: "ls -l",
			want:  []Word{{Text: "ls"}, {Text: "-l"}},
		},
		{
			name:  "single quoted word is marked",
			input: "echo '|'",
			want:  []Word{{Text: "echo"}, {Text: "|", Quoted: true}},
		},
		{
			name:  "double quoted word is marked",
			input: `echo ">"`,
			want:  []Word{{Text: "echo"}, {Text: ">", Quoted: true}},
		},
		{
			name:  "escaped character marks the word",
			input: `echo \&`,
			want:  []Word{{Text: "echo"}, {Text: "&", Quoted: true}},
		},
		{
			name:  "partially quoted word is marked",
			input: "pre'mid'post",
			want:  []Word{{Text: "premidpost", Quoted: true}},
		},
		{
			name:  "bare operators stay unquoted",
			input: "a | b > c &",
			want: []Word{
				{Text: "a"}, {Text: "|"}, {Text: "b"},
				{Text: ">"}, {Text: "c"}, {Text: "&"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitWords(tt.input)
			if err != nil {
				t.Fatalf("SplitWords(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitWords(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated single quote", "echo 'oops"},
		{"unterminated double quote", `echo "oops`},
		{"trailing backslash", `echo oops\`},
		{"unterminated process expansion", "echo $(date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Split(tt.input); err == nil {
				t.Errorf("Split(%q) error = nil, want error", tt.input)
			}
		})
	}
}
