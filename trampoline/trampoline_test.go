package trampoline

import "testing"

func TestRunResult(t *testing.T) {
	got := Run(Result(42))
	if got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestRunSingleCall(t *testing.T) {
	got := Run(Call(func() Step {
		return Result("done")
	}))
	if got != "done" {
		t.Fatalf("expected %q, got %v", "done", got)
	}
}

func TestRunDeepCallChain(t *testing.T) {
	// A chain this deep would overflow the stack if Run recursed.
	const depth = 1_000_000

	var countdown func(n int) Step
	countdown = func(n int) Step {
		if n == 0 {
			return Result(0)
		}
		return Call(func() Step {
			return countdown(n - 1)
		})
	}

	got := Run(countdown(depth))
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestDone(t *testing.T) {
	if !Result(nil).Done() {
		t.Errorf("Result should be done")
	}
	if Call(func() Step { return Result(nil) }).Done() {
		t.Errorf("Call should not be done")
	}
}
