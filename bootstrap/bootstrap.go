// Package bootstrap provisions the isolated tool environment used by tdash.
//
// The procedure is a linear sequence with no retries: relax the execution
// policy for the current process, ensure the environment directory exists
// (idempotent), activate it, upgrade the installer stamp, install every pack
// pinned in the manifest from a local archive cache (offline, fail fast), and
// verify the install by loading the dashboard engine pack and printing its
// version. Any failing step aborts the whole run with the underlying error.
package bootstrap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// EnginePack is the dashboard engine whose presence is smoke-tested at the end.
const EnginePack = "dashkit"

// installerVersion is stamped into the environment on every run; bumped when
// the install layout changes.
const installerVersion = "1"

const (
	markerFile = "env.json"
	packsDir   = "packs"
	binDir     = "bin"
)

// Environment variables set for the current process only.
const (
	PolicyVar = "TEAMDASH_EXEC_POLICY"
	RootVar   = "TEAMDASH_ENV"
)

// Config drives one bootstrap run.
type Config struct {
	Root     string // environment directory, e.g. ".teamdash"
	Manifest string // pinned pack manifest file
	Cache    string // local directory of pre-fetched pack archives

	Out    io.Writer                      // confirmation output, defaults to os.Stdout
	Setenv func(key, value string) error // process-scoped env mutation, defaults to os.Setenv
}

func (c *Config) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Config) setenv(key, value string) error {
	if c.Setenv == nil {
		return os.Setenv(key, value)
	}
	return c.Setenv(key, value)
}

// envState is the environment marker, persisted as env.json in the root.
type envState struct {
	CreatedAt time.Time         `json:"createdAt"`
	Installer string            `json:"installer"`
	Packs     map[string]string `json:"packs"` // name -> installed version
}

// Run executes the bootstrap sequence. Errors are returned as-is to the
// caller; nothing is retried or recovered.
func Run(cfg Config) error {
	if err := relaxPolicy(cfg); err != nil {
		return fmt.Errorf("relaxing execution policy: %w", err)
	}

	state, err := ensureEnv(cfg.Root)
	if err != nil {
		return fmt.Errorf("ensuring environment: %w", err)
	}

	if err := activate(cfg); err != nil {
		return fmt.Errorf("activating environment: %w", err)
	}

	state.Installer = installerVersion

	manifest, err := ReadManifest(cfg.Manifest)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	if err := install(cfg, state, manifest); err != nil {
		return fmt.Errorf("installing packs: %w", err)
	}

	if err := saveState(cfg.Root, state); err != nil {
		return fmt.Errorf("saving environment state: %w", err)
	}

	if err := Verify(cfg.Root, cfg.out()); err != nil {
		return fmt.Errorf("verifying install: %w", err)
	}
	return nil
}

// relaxPolicy permits running pack hooks for the current process only; the
// setting does not persist beyond this invocation.
func relaxPolicy(cfg Config) error {
	return cfg.setenv(PolicyVar, "process")
}

// ensureEnv creates the environment directory and its marker if absent, and
// loads the existing state otherwise. Creation happens at most once.
func ensureEnv(root string) (*envState, error) {
	marker := filepath.Join(root, markerFile)
	content, err := os.ReadFile(marker)
	if err == nil {
		state := new(envState)
		if err := json.Unmarshal(content, state); err != nil {
			return nil, fmt.Errorf("corrupt environment marker %q: %w", marker, err)
		}
		if state.Packs == nil {
			state.Packs = make(map[string]string)
		}
		return state, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	for _, dir := range []string{root, filepath.Join(root, packsDir), filepath.Join(root, binDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	state := &envState{
		CreatedAt: time.Now().UTC(),
		Packs:     make(map[string]string),
	}
	if err := saveState(root, state); err != nil {
		return nil, err
	}
	return state, nil
}

// activate exposes the environment to the remainder of the process.
func activate(cfg Config) error {
	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return err
	}
	if err := cfg.setenv(RootVar, abs); err != nil {
		return err
	}
	path := filepath.Join(abs, binDir) + string(os.PathListSeparator) + os.Getenv("PATH")
	return cfg.setenv("PATH", path)
}

// install resolves every manifest entry against the local cache only. A pack
// missing from the cache fails the run before anything is verified; there is
// no network fallback.
func install(cfg Config, state *envState, manifest []Pin) error {
	for _, pin := range manifest {
		archive := filepath.Join(cfg.Cache, pin.ArchiveName())
		content, err := os.ReadFile(archive)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("pack %s %s not found in local cache %q", pin.Name, pin.Version, cfg.Cache)
			}
			return err
		}
		dest := filepath.Join(cfg.Root, packsDir, pin.Name+".pack")
		if err := os.WriteFile(dest, content, 0644); err != nil {
			return err
		}
		state.Packs[pin.Name] = pin.Version
	}
	return nil
}

func saveState(root string, state *envState) error {
	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, markerFile), content, 0644)
}

// Verify smoke-tests the installed environment: the dashboard engine pack
// must be installed and present on disk. On success it prints "OK <version>".
func Verify(root string, w io.Writer) error {
	marker := filepath.Join(root, markerFile)
	content, err := os.ReadFile(marker)
	if err != nil {
		return fmt.Errorf("environment not provisioned: %w", err)
	}
	state := new(envState)
	if err := json.Unmarshal(content, state); err != nil {
		return fmt.Errorf("corrupt environment marker %q: %w", marker, err)
	}

	version, ok := state.Packs[EnginePack]
	if !ok {
		return fmt.Errorf("engine pack %q is not installed", EnginePack)
	}
	pack := filepath.Join(root, packsDir, EnginePack+".pack")
	if _, err := os.Stat(pack); err != nil {
		return fmt.Errorf("engine pack %q is broken: %w", EnginePack, err)
	}

	fmt.Fprintf(w, "OK %s\n", version)
	return nil
}
