// Package registry provides a global registry for front-end factories.
// Front-ends register themselves in init() functions, allowing the command
// line to pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/reflex"
	"github.com/vovakirdan/blindrace/internal/speech"
)

// Frontend is how the player meets the game: menus, in-game notifications
// and the end-of-run report. The engine itself is the same for all of them.
type Frontend interface {
	// Name returns the identifier used by --frontend (e.g., "visual").
	Name() string

	// Title returns a human-readable name for display.
	Title() string

	// Menu shows the main menu until the player picks a difficulty or quits.
	Menu() (MenuResult, error)

	// Observer receives run notifications while a game is in progress.
	Observer() reflex.Observer

	// Report presents a finished run and asks whether to play again.
	Report(summary reflex.RunSummary) (playAgain bool, err error)
}

// MenuResult holds the outcome of the main menu.
type MenuResult struct {
	Level int // Chosen difficulty, 1-4
	Quit  bool
}

// Sounds is the part of the audio player the menus need.
type Sounds interface {
	PlayCue(name string)
	SpeakerTest(s *core.Session, gap time.Duration) bool
	Stop()
}

// Deps are the shared services handed to a front-end factory.
type Deps struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Sounds  Sounds
	Voice   *speech.Announcer
	Logger  *log.Logger
}

// FrontendInfo contains metadata about a registered front-end.
type FrontendInfo struct {
	Name  string
	Title string
}

// Factory is a function that creates a front-end bound to its services.
type Factory func(deps Deps) Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front-end factory to the registry.
// Panics if a front-end with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	titles[name] = f(Deps{}).Title()
}

// List returns information about all registered front-ends, sorted by name.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, FrontendInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a front-end by name.
func Create(name string, deps Deps) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}

	return f(deps), nil
}

// Exists checks if a front-end with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
