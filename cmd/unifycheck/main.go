// Command unifycheck drives the unification engine against YAML-described
// constraint scenarios. It is a thin harness for manual exploration and for
// giving the engine's end-to-end test scenarios a runnable form outside of
// `go test` — it does not parse a real source language.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/render"
	"github.com/fluxtype/unify/internal/solver"
	"github.com/fluxtype/unify/internal/types"
	"github.com/fluxtype/unify/internal/unify"
)

func main() {
	scenarioPath := flag.String("scenarios", "", "path to a scenario YAML file")
	dbPath := flag.String("db", "unifycheck.db", "path to the session log SQLite database")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: unifycheck -scenarios FILE [-db PATH]")
		os.Exit(2)
	}

	file, err := LoadFile(*scenarioPath)
	if err != nil {
		log.Fatalf("unifycheck: %v", err)
	}

	sessionLog, err := OpenSessionLog(*dbPath)
	if err != nil {
		log.Fatalf("unifycheck: opening session log: %v", err)
	}
	defer sessionLog.Close()

	enabled := colorEnabled()
	failures := 0

	for _, sc := range file.Scenarios {
		pass, detail, sessionID := runScenario(sc)
		printResult(enabled, sc.Name, pass, detail)
		if err := sessionLog.Record(sessionID, sc.Name, pass, detail); err != nil {
			log.Printf("unifycheck: logging %q: %v", sc.Name, err)
		}
		if !pass {
			failures++
		}
	}

	if failures > 0 {
		fmt.Printf("%d/%d scenarios failed\n", failures, len(file.Scenarios))
		os.Exit(1)
	}
	fmt.Printf("all %d scenarios passed\n", len(file.Scenarios))
}

// runScenario builds both sides of sc in a fresh solver session, unifies
// them, and reports whether the outcome matches sc.Want ("ok", "mismatch",
// or "infinite").
func runScenario(sc Scenario) (pass bool, detail string, sessionID uuid.UUID) {
	st := solver.NewState()
	u := unify.New(st, func(v types.Variable) errs.RenderedType {
		return render.ToSrcType(st.Graph, v)
	})

	expected, err := newBuilder(st, 0).build(sc.Expected)
	if err != nil {
		return false, fmt.Sprintf("building expected: %v", err), st.SessionID
	}
	actual, err := newBuilder(st, 0).build(sc.Actual)
	if err != nil {
		return false, fmt.Sprintf("building actual: %v", err), st.SessionID
	}

	reported := u.Unify(sc.Hint, solver.Region{}, expected, actual)
	got := outcomeTag(reported)
	if got == sc.Want {
		if reported == nil {
			return true, "ok", st.SessionID
		}
		return true, reported.Error(), st.SessionID
	}
	if reported != nil {
		return false, fmt.Sprintf("want %q, got %q: %v", sc.Want, got, reported), st.SessionID
	}
	return false, fmt.Sprintf("want %q, got %q", sc.Want, got), st.SessionID
}

func outcomeTag(err error) string {
	switch err.(type) {
	case nil:
		return "ok"
	case *errs.InfiniteType:
		return "infinite"
	default:
		return "mismatch"
	}
}
