package registry

import (
	"context"
	"strings"
	"testing"
)

func noopWork(ctx context.Context) (interface{}, error) {
	return "ok", nil
}

func testEntries() []Benchmark {
	return []Benchmark{
		{Name: "memory", ParallelSafe: true, Work: noopWork},
		{Name: "latency", ParallelSafe: true, Work: noopWork},
		{Name: "security", Work: noopWork},
		{Name: "energy", DependsOn: []string{"memory"}, Work: noopWork},
		{Name: "scaling", DependsOn: []string{"latency", "memory"}, Work: noopWork},
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewPreservesRegistrationOrder(t *testing.T) {
	r, err := New(testEntries()...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := []string{"memory", "latency", "security", "energy", "scaling"}
	if !equalSlices(r.Names(), want) {
		t.Errorf("expected registration order %v, got %v", want, r.Names())
	}
	if r.Len() != 5 {
		t.Errorf("expected 5 benchmarks, got %d", r.Len())
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New(
		Benchmark{Name: "memory", Work: noopWork},
		Benchmark{Name: "memory", Work: noopWork},
	)
	if err == nil || !strings.Contains(err.Error(), "duplicate benchmark name") {
		t.Errorf("expected duplicate name error, got %v", err)
	}
}

func TestNewRejectsEmptyName(t *testing.T) {
	_, err := New(Benchmark{Name: "", Work: noopWork})
	if err == nil || !strings.Contains(err.Error(), "name cannot be empty") {
		t.Errorf("expected empty name error, got %v", err)
	}
}

func TestNewRejectsMissingWork(t *testing.T) {
	_, err := New(Benchmark{Name: "memory"})
	if err == nil || !strings.Contains(err.Error(), "no work function") {
		t.Errorf("expected missing work error, got %v", err)
	}
}

func TestNewRejectsUnknownDependency(t *testing.T) {
	_, err := New(
		Benchmark{Name: "energy", DependsOn: []string{"memory"}, Work: noopWork},
	)
	if err == nil || !strings.Contains(err.Error(), "non-existent benchmark memory") {
		t.Errorf("expected unknown dependency error, got %v", err)
	}
}

func TestNewRejectsSelfDependency(t *testing.T) {
	_, err := New(
		Benchmark{Name: "energy", DependsOn: []string{"energy"}, Work: noopWork},
	)
	if err == nil || !strings.Contains(err.Error(), "depends on itself") {
		t.Errorf("expected self dependency error, got %v", err)
	}
}

func TestNewRejectsDependencyCycle(t *testing.T) {
	_, err := New(
		Benchmark{Name: "a", DependsOn: []string{"b"}, Work: noopWork},
		Benchmark{Name: "b", DependsOn: []string{"c"}, Work: noopWork},
		Benchmark{Name: "c", DependsOn: []string{"a"}, Work: noopWork},
	)
	if err == nil || !strings.Contains(err.Error(), "circular dependency") {
		t.Errorf("expected cycle error, got %v", err)
	}
}

func TestSelectAll(t *testing.T) {
	r, err := New(testEntries()...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	selected, err := r.Select("all")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(selected) != 5 {
		t.Errorf("expected all 5 benchmarks, got %d", len(selected))
	}
	if selected[0].Name != "memory" || selected[4].Name != "scaling" {
		t.Errorf("selection must preserve registration order, got %v", selected)
	}
}

func TestSelectSingle(t *testing.T) {
	r, err := New(testEntries()...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	selected, err := r.Select("security")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(selected) != 1 || selected[0].Name != "security" {
		t.Errorf("expected only security, got %v", selected)
	}
}

func TestSelectUnknownMode(t *testing.T) {
	r, err := New(testEntries()...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = r.Select("turbo")
	if err == nil || !strings.Contains(err.Error(), "unknown mode: turbo") {
		t.Errorf("expected unknown mode error, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	r, err := New(testEntries()...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	b, ok := r.Lookup("scaling")
	if !ok {
		t.Fatal("expected scaling to be registered")
	}
	if !equalSlices(b.DependsOn, []string{"latency", "memory"}) {
		t.Errorf("unexpected dependencies %v", b.DependsOn)
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("expected lookup miss for unregistered name")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r, err := New(testEntries()...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	all := r.All()
	all[0].Name = "mutated"

	if r.Names()[0] != "memory" {
		t.Error("All must return a copy, registry was mutated")
	}
}
