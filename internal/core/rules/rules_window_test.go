package rules

import (
	"strings"
	"testing"
)

func TestSuffixReuse(t *testing.T) {
	tests := []struct {
		name      string
		window    []string
		wantFired bool
		wantHint  string
	}{
		{
			name:      "same long argument fires",
			window:    []string{"ls a/b/c/dir", "cd a/b/c/dir"},
			wantFired: true,
			wantHint:  `"cd !$"`,
		},
		{
			name:      "different arguments",
			window:    []string{"ls a", "cd b"},
			wantFired: false,
		},
		{
			name:      "identical commands",
			window:    []string{"cd a/b/c/dir", "cd a/b/c/dir"},
			wantFired: false,
		},
		{
			name:      "no arguments",
			window:    []string{"ls", "pwd"},
			wantFired: false,
		},
		{
			name:      "replacement not short enough",
			window:    []string{"ls dir", "cd dir"},
			wantFired: false,
		},
		{
			name:      "multiple shared arguments",
			window:    []string{"head -n 5 somefile.txt", "wc -n 5 somefile.txt"},
			wantFired: true,
			wantHint:  `"wc !$"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, presenter := newTestContext()
			if fired := SuffixReuse(ctx, tt.window); fired != tt.wantFired {
				t.Fatalf("SuffixReuse(%v) = %v, want %v", tt.window, fired, tt.wantFired)
			}
			if !tt.wantFired {
				return
			}
			if len(presenter.Commands) != 2 {
				t.Errorf("shown commands = %v, want both window commands", presenter.Commands)
			}
			if !strings.Contains(presenter.Suggestions[0].Text, tt.wantHint) {
				t.Errorf("suggestion %q does not mention %s", presenter.Suggestions[0].Text, tt.wantHint)
			}
		})
	}
}

func TestZless(t *testing.T) {
	tests := []struct {
		name      string
		window    []string
		wantFired bool
	}{
		{
			name:      "gzip -d then less on extracted file",
			window:    []string{"gzip -d f.txt.gzip", "less f.txt"},
			wantFired: true,
		},
		{
			name:      "gunzip then less",
			window:    []string{"gunzip notes.txt.gz", "less notes.txt"},
			wantFired: true,
		},
		{
			name:      "less on unrelated file",
			window:    []string{"gzip -d f.txt.gzip", "less other.txt"},
			wantFired: false,
		},
		{
			name:      "first command is not an extraction",
			window:    []string{"cat f.txt.gzip", "less f.txt"},
			wantFired: false,
		},
		{
			name:      "archive without gzip extension",
			window:    []string{"gzip -d f.txt", "less f.txt"},
			wantFired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, presenter := newTestContext()
			if fired := Zless(ctx, tt.window); fired != tt.wantFired {
				t.Fatalf("Zless(%v) = %v, want %v", tt.window, fired, tt.wantFired)
			}
			if tt.wantFired && !strings.Contains(presenter.Suggestions[0].Text, "zless") {
				t.Errorf("suggestion %q does not mention zless", presenter.Suggestions[0].Text)
			}
		})
	}
}

func TestMkdirChain(t *testing.T) {
	fires := []string{"mkdir proj", "cd proj", "mkdir src"}

	t.Run("mkdir cd mkdir fires", func(t *testing.T) {
		ctx, presenter := newTestContext()
		if !MkdirChain(ctx, fires) {
			t.Fatal("MkdirChain did not fire on mkdir/cd/mkdir")
		}
		if !strings.Contains(presenter.Suggestions[0].Text, "mkdir -p proj/src") {
			t.Errorf("suggestion %q does not contain \"mkdir -p proj/src\"", presenter.Suggestions[0].Text)
		}
	})

	t.Run("any permutation does not fire", func(t *testing.T) {
		permutations := [][]string{
			{"mkdir proj", "mkdir src", "cd proj"},
			{"cd proj", "mkdir proj", "mkdir src"},
			{"cd proj", "mkdir src", "mkdir proj"},
			{"mkdir src", "mkdir proj", "cd proj"},
			{"mkdir src", "cd proj", "mkdir proj"},
		}
		for _, window := range permutations {
			ctx, _ := newTestContext()
			if MkdirChain(ctx, window) {
				t.Errorf("MkdirChain(%v) fired, want no fire", window)
			}
		}
	})

	t.Run("cd into different directory", func(t *testing.T) {
		ctx, _ := newTestContext()
		if MkdirChain(ctx, []string{"mkdir proj", "cd other", "mkdir src"}) {
			t.Error("MkdirChain fired although cd targets a different directory")
		}
	})

	t.Run("third mkdir without argument", func(t *testing.T) {
		ctx, _ := newTestContext()
		if MkdirChain(ctx, []string{"mkdir proj", "cd proj", "mkdir"}) {
			t.Error("MkdirChain fired although the third mkdir has no argument")
		}
	})
}
