package rbtreecmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", "10", "7", "20", "5", "9", "15", "25", "7", "--remove", "7,8")
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"skipped: duplicate key: 7",
		"not present: 8",
		"10.b.p:null\t\n",
		"9.b.p:10\t20.b.p:10\t\n",
		"5.r.p:9\t15.r.p:20\t25.r.p:20\t\n",
		"size: 6 height: 3 valid: true",
	}
	for _, e := range expected {
		if !strings.Contains(out, e) {
			t.Errorf("expected output to contain %q, got:\n%s", e, out)
		}
	}
}

func TestDump_BadKey(t *testing.T) {
	if _, err := run(t, "dump", "ten"); err == nil {
		t.Error("expected a non-integer key to fail")
	}
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify", "--keys", "300", "--rounds", "2", "--log-level", "error")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "ok: 2 rounds of 300 keys") {
		t.Error("unexpected output", out)
	}
}

func TestBench(t *testing.T) {
	_, err := run(t, "bench", "--keys", "1000", "--insert-order", "descending", "--log-level", "error")
	if err != nil {
		t.Fatal(err)
	}

	if _, err = run(t, "bench", "--keys", "10", "--insert-order", "sideways", "--log-level", "error"); err == nil {
		t.Error("expected an unknown order to fail")
	}
}

func TestRegisterCommand_Duplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected duplicate registration to panic")
		}
	}()
	RegisterCommand(Command{Name: "dump", Func: cmdDump})
}

func TestMain_ReturnsError(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	rootCmd.SetArgs([]string{"dump", "ten"})
	if err := Main(); err == nil {
		t.Error("expected a failing command to return its error")
	}

	rootCmd.SetArgs([]string{"dump", "1", "2"})
	if err := Main(); err != nil {
		t.Error("expected success but got", err)
	}
}
