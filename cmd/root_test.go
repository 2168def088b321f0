package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/papapumpkin/prism/internal/catalog"
	"github.com/papapumpkin/prism/internal/product"
	"github.com/papapumpkin/prism/internal/ui"
)

func TestRunDemo(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	runDemo(ui.New(&out, &errOut, false), catalog.Sample())

	want := strings.Join([]string{
		"Apple is Green",
		"Tree is Green",
		"Big Tree is Green",
		"Tree is Large",
		"House is Large",
		"Big Tree is Large",
		"Tree is Green and Large",
		"Big Tree is Green and Large",
	}, "\n") + "\n"

	if got := out.String(); got != want {
		t.Errorf("demo output:\n%s\nwant:\n%s", got, want)
	}
	if errOut.Len() != 0 {
		t.Errorf("quiet demo wrote diagnostics: %q", errOut.String())
	}
}

func TestRunDemoEmptyCatalog(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	runDemo(ui.New(&out, &errOut, false), nil)
	if out.Len() != 0 {
		t.Errorf("expected no output for an empty catalog, got %q", out.String())
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"filter", "items", "init"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q subcommand to be registered on rootCmd", name)
		}
	}
}

func TestFilterCmd_Flags(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"color", "size", "any", "explain"} {
		if filterCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag %q to be registered on filter command", flag)
		}
	}
	for _, flag := range []string{"config", "catalog", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag %q on root command", flag)
		}
	}
}

func TestRunQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    query
		want []string
	}{
		{
			name: "ColorOnly",
			q:    query{Colors: []string{"green"}},
			want: []string{"Apple is Green", "Tree is Green", "Big Tree is Green"},
		},
		{
			name: "SizeOnly",
			q:    query{Sizes: []string{"large"}},
			want: []string{"Tree is Large", "House is Large", "Big Tree is Large"},
		},
		{
			name: "ColorAndSize",
			q:    query{Colors: []string{"green"}, Sizes: []string{"large"}},
			want: []string{"Tree is Green and Large", "Big Tree is Green and Large"},
		},
		{
			name: "ColorOrSize",
			q:    query{Colors: []string{"blue"}, Sizes: []string{"small"}, AnyOf: true},
			want: []string{"Apple is Blue or Small", "House is Blue or Small"},
		},
		{
			name: "NoCriteria",
			q:    query{},
			want: []string{"Apple is anything", "Tree is anything", "House is anything", "Big Tree is anything"},
		},
		{
			name: "NoCriteriaAny",
			q:    query{AnyOf: true},
			want: []string{"Apple is anything", "Tree is anything", "House is anything", "Big Tree is anything"},
		},
		{
			name: "NothingMatches",
			q:    query{Colors: []string{"red"}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out, errOut bytes.Buffer
			if err := runQuery(ui.New(&out, &errOut, false), catalog.Sample(), tt.q); err != nil {
				t.Fatalf("runQuery: %v", err)
			}
			var got []string
			if s := strings.TrimSuffix(out.String(), "\n"); s != "" {
				got = strings.Split(s, "\n")
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunQueryExplain(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	q := query{Colors: []string{"green"}, Sizes: []string{"large"}, Explain: true}
	if err := runQuery(ui.New(&out, &errOut, false), catalog.Sample(), q); err != nil {
		t.Fatalf("runQuery: %v", err)
	}

	diag := errOut.String()
	for _, want := range []string{`Apple rejected by "Large"`, `House rejected by "Green"`, "✓ Tree", "✓ Big Tree"} {
		if !strings.Contains(diag, want) {
			t.Errorf("explain output missing %q:\n%s", want, diag)
		}
	}
	if !strings.Contains(out.String(), "Tree is Green and Large") {
		t.Errorf("matches missing from output: %q", out.String())
	}
}

func TestBuildChecksRejectsUnknownNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		colors []string
		sizes  []string
		target error
	}{
		{"Color", []string{"purple"}, nil, product.ErrUnknownColor},
		{"Size", nil, []string{"huge"}, product.ErrUnknownSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := buildChecks(tt.colors, tt.sizes)
			if !errors.Is(err, tt.target) {
				t.Errorf("buildChecks error = %v, want %v", err, tt.target)
			}
		})
	}
}
