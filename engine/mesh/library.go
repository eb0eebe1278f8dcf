package mesh

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// library is the implementation of the Library interface.
type library struct {
	mu *sync.Mutex

	overrideDir string
	workers     int
	genOptions  []GenerateOption

	meshes map[string]*Mesh
}

// Library prepares the unit meshes before the frame loop starts.
// Each descriptor is generated procedurally unless the override directory holds a glTF file of the same name.
type Library interface {
	// Build prepares every named mesh, one worker task per name, and waits for all of them.
	// Meshes built by an earlier call are kept.
	//
	// Parameters:
	//   - names: descriptor names, ".xml" suffixes allowed
	//
	// Returns:
	//   - error: every task failure joined together, nil if all meshes were built
	Build(names ...string) error

	// Mesh returns a built mesh.
	//
	// Parameters:
	//   - name: descriptor name, ".xml" suffix allowed
	//
	// Returns:
	//   - *Mesh: the mesh
	//   - error: ErrUnknownDescriptor if it was never built
	Mesh(name string) (*Mesh, error)

	// Meshes returns all built meshes keyed by bare descriptor name.
	//
	// Returns:
	//   - map[string]*Mesh: a copy of the mesh map
	Meshes() map[string]*Mesh
}

var _ Library = &library{}

// LibraryOption configures a Library.
type LibraryOption func(*library)

// WithOverrideDir sets the directory searched for <name>.gltf and <name>.glb overrides.
//
// Parameters:
//   - dir: the directory, empty to disable overrides
//
// Returns:
//   - LibraryOption: functional option to set the override directory
func WithOverrideDir(dir string) LibraryOption {
	return func(l *library) {
		l.overrideDir = dir
	}
}

// WithWorkers sets the number of goroutines used by Build.
//
// Parameters:
//   - n: worker count, at least 1
//
// Returns:
//   - LibraryOption: functional option to set the worker count
func WithWorkers(n int) LibraryOption {
	return func(l *library) {
		l.workers = max(n, 1)
	}
}

// WithGenerateOptions forwards options to procedural generation.
//
// Parameters:
//   - options: generation options such as WithPlaneTiling
//
// Returns:
//   - LibraryOption: functional option to set the generation options
func WithGenerateOptions(options ...GenerateOption) LibraryOption {
	return func(l *library) {
		l.genOptions = append(l.genOptions, options...)
	}
}

// NewLibrary creates an empty Library.
//
// Parameters:
//   - options: functional options to configure the library
//
// Returns:
//   - Library: the new library
func NewLibrary(options ...LibraryOption) Library {
	l := &library{
		mu:      &sync.Mutex{},
		workers: 4,
		meshes:  make(map[string]*Mesh),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *library) Build(names ...string) error {
	pool := worker.NewDynamicWorkerPool(l.workers, len(names)+1, 1*time.Second)

	var (
		wg    sync.WaitGroup
		errMu sync.Mutex
		errs  []error
	)
	for id, name := range names {
		wg.Add(1)
		n := NormalizeName(name)
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				m, err := l.load(n)
				if err != nil {
					errMu.Lock()
					errs = append(errs, err)
					errMu.Unlock()
					return nil, err
				}
				l.mu.Lock()
				l.meshes[n] = m
				l.mu.Unlock()
				return m, nil
			},
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

// load produces one mesh, preferring an override file.
func (l *library) load(name string) (*Mesh, error) {
	if l.overrideDir != "" {
		for _, ext := range []string{".gltf", ".glb"} {
			path := filepath.Join(l.overrideDir, name+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			log.Printf("[Mesh] loading %s from %s", name, path)
			return LoadGLTF(path, name)
		}
	}
	m, err := Generate(name, l.genOptions...)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (l *library) Mesh(name string) (*Mesh, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name = NormalizeName(name)
	m, ok := l.meshes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q not built", ErrUnknownDescriptor, name)
	}
	return m, nil
}

func (l *library) Meshes() map[string]*Mesh {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]*Mesh, len(l.meshes))
	for k, v := range l.meshes {
		out[k] = v
	}
	return out
}
