// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"primaldimer/internal/app"
	"primaldimer/internal/appshell"
	"primaldimer/pkg/api"
)

const (
	left  = "ACACCTGTGCCTGTTAAACCAT"
	right = "TGGAAATACCCACAAGTTAATGGTTTAAC"
	polyA = "AAAAAAAAAAAAAAAAAAAA"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func exec(argv ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := appshell.Exec(app.RunContext, argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEnd(t *testing.T) {
	fn := write(t, "kmers.tsv", fmt.Sprintf("F\t30\t%s\nR\t300\t%s\nR\t400\t%s\n", left, right, polyA))

	code, out, stderr := exec("-o", "jsonl", "pairs", "-k", fn, "--amplicon-min", "100")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, stderr)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("want one pair, got %d:\n%s", len(lines), out)
	}
	var p api.PairV1
	if err := json.Unmarshal([]byte(lines[0]), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The dimer-forming reverse at 300 is rejected.
	if p.RStart != 400 || p.AmpliconSize != 392 || p.FSeqs[0] != left {
		t.Fatalf("unexpected pair: %+v", p)
	}
}

func TestNoArgsPrintsHelp(t *testing.T) {
	code, out, _ := exec()
	if code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("code=%d out=%q", code, out)
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, "F\t%d\t%s,%s\n", 50+i*11, left, polyA)
		fmt.Fprintf(&b, "R\t%d\t%s\n", 250+i*13, polyA)
		fmt.Fprintf(&b, "R\t%d\t%s\n", 260+i*13, right)
	}
	fn := write(t, "par.tsv", b.String())

	run := func(threads int) string {
		code, out, stderr := exec("-o", "json", "--threads", fmt.Sprint(threads),
			"pairs", "-k", fn, "--amplicon-min", "100", "--amplicon-max", "600")
		if code != 0 {
			t.Fatalf("exit %d err %s", code, stderr)
		}
		return out
	}

	serial := run(1)
	parallel := run(4)

	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}
