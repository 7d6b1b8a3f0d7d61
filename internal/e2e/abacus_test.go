package e2e

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAbacus_Default(t *testing.T) {
	bin := buildBinary(t, "abacus")
	assertRun(t, runCmd(t, bin), 0, "abacus is running successfully!\nUse --help for available commands.\n", "")
}

func TestAbacus_GreetTwice(t *testing.T) {
	bin := buildBinary(t, "abacus")
	assertRun(t, runCmd(t, bin, "greet", "Alice", "--count", "2"), 0, "1. Hello, Alice!\n2. Hello, Alice!\n", "")
}

func TestAbacus_GenerateThree(t *testing.T) {
	bin := buildBinary(t, "abacus")
	want := "Generated 3 test items:\n" +
		"  Item{ID: 1, Name: \"Item 1\", Value: 1.5}\n" +
		"  Item{ID: 2, Name: \"Item 2\", Value: 3}\n" +
		"  Item{ID: 3, Name: \"Item 3\", Value: 4.5}\n"
	assertRun(t, runCmd(t, bin, "generate", "--count", "3"), 0, want, "")
}

func TestAbacus_MathDivideByZero(t *testing.T) {
	bin := buildBinary(t, "abacus")
	assertRun(t, runCmd(t, bin, "math", "divide", "5", "0"), 1, "", "Error: division by zero\n")
}

func TestAbacus_BuildTimeJSONOutput(t *testing.T) {
	bin := buildBinary(t, "abacus", "-X github.com/flarebyte/abacus/internal/buildinfo.OutputFormat=json")
	r := runCmd(t, bin, "math", "add", "1", "2")
	if r.code != 0 {
		t.Fatalf("exit code: %d (stderr: %s)", r.code, string(r.stderr))
	}
	text, doc, ok := strings.Cut(string(r.stdout), "\nJSON output:\n")
	if !ok {
		t.Fatalf("missing JSON echo: %q", string(r.stdout))
	}
	if text != "1 + 2 = 3\n" {
		t.Fatalf("unexpected text: %q", text)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["result"] != 3.0 || got["operation"] != "add" {
		t.Fatalf("unexpected echo: %v", got)
	}
}

func TestAbacus_Deterministic(t *testing.T) {
	bin := buildBinary(t, "abacus")
	var runs []runResult
	for i := 0; i < 5; i++ {
		runs = append(runs, runCmd(t, bin, "--output", "yaml", "generate", "--count", "4"))
	}
	assertStable(t, runs)
}
