package reftest

import "testing"

func TestRunScenarioPass(t *testing.T) {
	r := NewRunner(false)
	sum := r.RunAll(Scenarios())
	if sum.Failed != 0 || sum.Errors != 0 {
		for _, res := range sum.Results {
			if res.Status != Pass {
				t.Errorf("%s: %s (%s)", res.Name, res.Status, res.Message)
			}
		}
	}
	if sum.Total != len(Scenarios()) {
		t.Errorf("sum.Total = %d, want %d", sum.Total, len(Scenarios()))
	}
}

func TestRunScenarioDetectsWrongWant(t *testing.T) {
	r := NewRunner(false)
	sc := Scenario{
		Name:  "deliberately wrong",
		Input: "<p>hi</p>",
		Want:  nil,
	}
	res := r.RunScenario(sc)
	if res.Status != Fail {
		t.Fatalf("RunScenario with empty Want = %v, want Fail", res.Status)
	}
}

func TestCoalesceMergesAdjacentCharacterTokens(t *testing.T) {
	// The '<' that opens no tag flushes "a", so the tokenizer emits the
	// two adjacent runs "a" and "< b".
	got, err := tokenize("a< b", []int{1})
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	merged := coalesce(got)
	count := 0
	for _, tk := range merged {
		if tk.Data == "a< b" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected coalesced run \"a< b\" exactly once, got %#v", merged)
	}
}
