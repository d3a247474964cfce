package arith

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/pars/parse"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"-4", -4},
		{" 7 ", 7},
		{"1+2", 3},
		{"8-2-1", 5},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2},
		{"8/2/2", 2},
		{"1 - -2", 3},
		{"( (1+2) * (3+4) )", 21},
		{"2 * 3 + 4 * 5", 26},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Eval(tt.input)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q): expected %d, got %d", tt.input, tt.want, got)
			}
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := Eval("1/0")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("expected division-by-zero message, got %q", err.Error())
	}
}

func TestEvalRejectsTrailingInput(t *testing.T) {
	_, err := Eval("1+2;")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "expected end of input") {
		t.Errorf("expected trailing-input message, got %q", err.Error())
	}
}

func TestEvalIncompleteExpression(t *testing.T) {
	_, err := Eval("1+")
	if err == nil {
		t.Fatal("expected an error")
	}

	var parseErr *parse.Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *parse.Error, got %T", err)
	}
	if !parseErr.EndOfInput() {
		t.Errorf("expected an end-of-input failure, got %q", err.Error())
	}
}

func TestCheckReportsLocation(t *testing.T) {
	err := Check("1 +\n* 2")
	if err == nil {
		t.Fatal("expected an error")
	}

	var parseErr *parse.Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *parse.Error, got %T", err)
	}
	// The branches that tried to parse an operand after `+` failed on
	// line 2; their messages carry that location.
	found := false
	for _, m := range parseErr.Messages {
		if m.Location.Line == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a failure located on line 2, got %q", err.Error())
	}
}

func TestCheckAcceptsValidInput(t *testing.T) {
	if err := Check("(1+2)*3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
