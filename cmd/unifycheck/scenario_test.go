package main

import "testing"

func TestLoadFileParsesScenarios(t *testing.T) {
	f, err := LoadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(f.Scenarios) != 5 {
		t.Fatalf("len(Scenarios) = %d, want 5", len(f.Scenarios))
	}
	if f.Scenarios[0].Name != "identical-atoms" {
		t.Errorf("Scenarios[0].Name = %q, want identical-atoms", f.Scenarios[0].Name)
	}
}

func TestRunScenarioMatchesWant(t *testing.T) {
	f, err := LoadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	for _, sc := range f.Scenarios {
		pass, detail, _ := runScenario(sc)
		if !pass {
			t.Errorf("scenario %q: %s", sc.Name, detail)
		}
	}
}

func TestRunScenarioDetectsMismatchedWant(t *testing.T) {
	sc := Scenario{
		Name:     "deliberately-wrong-expectation",
		Hint:     "test",
		Expected: &Node{Atom: "Int"},
		Actual:   &Node{Atom: "Float"},
		Want:     "ok",
	}
	pass, _, _ := runScenario(sc)
	if pass {
		t.Fatalf("expected a want mismatch to be reported as a failing scenario")
	}
}

func TestBuilderReusesNamedVariable(t *testing.T) {
	f, err := LoadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	var selfArrow Scenario
	for _, sc := range f.Scenarios {
		if sc.Name == "self-arrow-vs-concrete" {
			selfArrow = sc
		}
	}
	if selfArrow.Name == "" {
		t.Fatal("self-arrow-vs-concrete scenario not found")
	}
	pass, detail, _ := runScenario(selfArrow)
	if !pass {
		t.Fatalf("self-arrow-vs-concrete: %s", detail)
	}
}
