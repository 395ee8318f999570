package rules

import (
	"reflect"
	"testing"

	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/testutil"
)

func newVariableContext(env map[string]string) (*Context, *testutil.RecordingPresenter) {
	presenter := &testutil.RecordingPresenter{}
	ctx := &Context{
		Presenter: presenter,
		Env:       &testutil.MapEnvironmentReader{Values: env},
		Shell:     shell.Bash,
	}
	return ctx, presenter
}

func TestHistSize(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantFired bool
	}{
		{"small bound", map[string]string{"HISTSIZE": "500"}, true},
		{"zero", map[string]string{"HISTSIZE": "0"}, true},
		{"just below threshold", map[string]string{"HISTSIZE": "4999"}, true},
		{"at threshold", map[string]string{"HISTSIZE": "5000"}, false},
		{"generous", map[string]string{"HISTSIZE": "100000"}, false},
		{"unset means unbounded", map[string]string{}, false},
		{"non-numeric means unbounded", map[string]string{"HISTSIZE": "unlimited"}, false},
		{"negative means unbounded", map[string]string{"HISTSIZE": "-1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, presenter := newVariableContext(tt.env)
			if fired := HistSize(ctx); fired != tt.wantFired {
				t.Errorf("HistSize(%v) = %v, want %v", tt.env, fired, tt.wantFired)
			}
			if !tt.wantFired && len(presenter.Suggestions) != 0 {
				t.Errorf("rule did not fire but emitted %v", presenter.Suggestions)
			}
		})
	}
}

func TestHistFileSize(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantTips []string
	}{
		{
			name:     "unset never fires",
			env:      map[string]string{},
			wantTips: []string{},
		},
		{
			name:     "small value with unset HISTSIZE fires only the size tip",
			env:      map[string]string{"HISTFILESIZE": "500"},
			wantTips: []string{"Increase/set HISTFILESIZE to retain more history"},
		},
		{
			name: "small value below HISTSIZE fires both tips",
			env:  map[string]string{"HISTFILESIZE": "500", "HISTSIZE": "10000"},
			wantTips: []string{
				"Increase/set HISTFILESIZE to retain more history",
				"Set HISTFILESIZE >= HISTSIZE",
			},
		},
		{
			name:     "generous value above HISTSIZE is quiet",
			env:      map[string]string{"HISTFILESIZE": "20000", "HISTSIZE": "10000"},
			wantTips: []string{},
		},
		{
			name:     "generous value below HISTSIZE fires the ordering tip",
			env:      map[string]string{"HISTFILESIZE": "10000", "HISTSIZE": "50000"},
			wantTips: []string{"Set HISTFILESIZE >= HISTSIZE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, presenter := newVariableContext(tt.env)
			fired := HistFileSize(ctx)
			if fired != (len(tt.wantTips) > 0) {
				t.Fatalf("HistFileSize(%v) = %v, want %v", tt.env, fired, len(tt.wantTips) > 0)
			}
			if got := presenter.SuggestionTexts(); !reflect.DeepEqual(got, tt.wantTips) {
				t.Errorf("tips = %v, want %v", got, tt.wantTips)
			}
		})
	}
}

func TestSaveHist(t *testing.T) {
	ctx, presenter := newVariableContext(map[string]string{"SAVEHIST": "100", "HISTSIZE": "5000"})

	if !SaveHist(ctx) {
		t.Fatal("SaveHist did not fire on a small SAVEHIST")
	}
	want := []string{
		"Increase/set SAVEHIST to retain more history",
		"Set SAVEHIST >= HISTSIZE",
	}
	if got := presenter.SuggestionTexts(); !reflect.DeepEqual(got, want) {
		t.Errorf("tips = %v, want %v", got, want)
	}
}

func TestHistControl(t *testing.T) {
	tests := []struct {
		value     string
		wantFired bool
	}{
		{"ignoredups", true},
		{"erasedups", true},
		{"ignoreboth:erasedups", true},
		{"ignorespace", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("HISTCONTROL="+tt.value, func(t *testing.T) {
			ctx, _ := newVariableContext(map[string]string{"HISTCONTROL": tt.value})
			if fired := HistControl(ctx); fired != tt.wantFired {
				t.Errorf("HistControl(%q) = %v, want %v", tt.value, fired, tt.wantFired)
			}
		})
	}
}

// Variable rules only read the environment, so running one twice against
// the same values must produce the same output twice.
func TestVariableRulesAreIdempotent(t *testing.T) {
	ctx, presenter := newVariableContext(map[string]string{"HISTSIZE": "500"})

	HistSize(ctx)
	first := append([]string(nil), presenter.SuggestionTexts()...)
	presenter.Reset()
	HistSize(ctx)

	if got := presenter.SuggestionTexts(); !reflect.DeepEqual(got, first) {
		t.Errorf("second run = %v, want %v", got, first)
	}
}
