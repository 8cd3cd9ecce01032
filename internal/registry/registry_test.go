package registry

import (
	"testing"

	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/reflex"
)

type stubFrontend struct {
	name string
	deps Deps
}

func (s stubFrontend) Name() string                           { return s.name }
func (s stubFrontend) Title() string                          { return "Stub " + s.name }
func (s stubFrontend) Menu() (MenuResult, error)              { return MenuResult{Quit: true}, nil }
func (s stubFrontend) Observer() reflex.Observer              { return reflex.NopObserver{} }
func (s stubFrontend) Report(reflex.RunSummary) (bool, error) { return false, nil }

func stubFactory(name string) Factory {
	return func(deps Deps) Frontend { return stubFrontend{name: name, deps: deps} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", stubFactory("stub-b"))
	Register("stub-a", stubFactory("stub-a"))

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered front-ends should exist")
	}
	if Exists("stub-missing") {
		t.Error("unregistered front-end should not exist")
	}

	var names []string
	for _, info := range List() {
		if info.Name == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("title = %q", info.Title)
		}
		names = append(names, info.Name)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}

	f, err := Create("stub-a", Deps{Runtime: core.RuntimeConfig{TickRate: 30}})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.Name() != "stub-a" {
		t.Errorf("Name() = %q", f.Name())
	}
	if got := f.(stubFrontend).deps.Runtime.TickRate; got != 30 {
		t.Errorf("deps not passed through, tick rate %d", got)
	}

	if _, err := Create("stub-missing", Deps{}); err == nil {
		t.Error("Create() of an unknown name should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", stubFactory("stub-dup"))
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", stubFactory("stub-dup"))
}
