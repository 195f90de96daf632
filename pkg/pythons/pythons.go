// Package pythons locates Python interpreters registered on the
// system.
//
// Installations are discovered under the registry keys Python
// distributions publish to (PEP 514), in a fixed priority order: the
// current user's registrations first, then machine-wide ones, then
// machine-wide 32-bit registrations seen through the WOW6432Node view.
// PythonUp's own keys supply the list of versions the user has
// activated and the location of the interpreter bundled with PythonUp
// itself.
package pythons

import (
	"errors"
	"fmt"
	"strings"

	"github.com/uranusjr/pythonup/internal/cmdlogger"
	"github.com/uranusjr/pythonup/pkg/store"
	"github.com/uranusjr/pythonup/pkg/tag"
)

var (
	// ErrNoMatchingPython is returned when no registered installation
	// falls within the queried tag.
	ErrNoMatchingPython = errors.New("no matching Python")

	// ErrNoActiveVersions is returned when no active version list is
	// declared.
	ErrNoActiveVersions = errors.New("no active Python versions are declared")
)

type location struct {
	hive store.Hive
	path string
}

func (l location) String() string {
	return l.hive.String() + `\` + l.path
}

// The keys Python distributions register installations under, in
// lookup priority order.
var installLocations = []location{
	{store.CurrentUser, `Software\Python\PythonCore`},
	{store.LocalMachine, `Software\Python\PythonCore`},
	{store.LocalMachine, `Software\Wow6432Node\Python\PythonCore`},
}

// PythonUp's own keys. Their default values hold the ";"-separated
// active version list and PythonUp's installation root.
const (
	activeVersionsKey = `Software\uranusjr\PythonUp\ActivePythonVersions`
	ownInstallKey     = `Software\uranusjr\PythonUp\InstallPath`
)

// A Finder looks up Python interpreters in a store. Lookups are
// synchronous and stateless: every call re-reads the store.
type Finder struct {
	store store.Store
}

// NewFinder returns a Finder reading from st.
func NewFinder(st store.Store) *Finder {
	return &Finder{store: st}
}

// Find resolves query to an interpreter path, preferring the declared
// active versions and falling back to the best installed one when no
// active version matches or none are declared. Store access failures
// are not fallen back from.
func (f *Finder) Find(query tag.Tag) (string, error) {
	path, err := f.FindBestActive(query)

	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, ErrNoActiveVersions), errors.Is(err, ErrNoMatchingPython):
		return f.FindBestInstalled(query)
	default:
		return "", err
	}
}

// FindBestInstalled returns the executable path of the best installed
// Python falling within query: the highest matching version, with
// 64-bit builds winning over 32-bit builds of the same version.
//
// When the best candidate's registration exists but cannot be read the
// lookup fails instead of moving on to the next candidate, so a single
// broken registration can mask a working older installation.
func (f *Finder) FindBestInstalled(query tag.Tag) (string, error) {
	installed := f.Installed()

	for i := len(installed) - 1; i >= 0; i-- {
		if query.Contains(installed[i]) {
			return f.InstallPath(installed[i])
		}
	}

	return "", fmt.Errorf("%w installed for %q", ErrNoMatchingPython, query)
}

// FindBestActive returns the executable path of the first declared
// active version falling within query. Declaration order decides
// precedence; versions are never reordered.
func (f *Finder) FindBestActive(query tag.Tag) (string, error) {
	active, err := f.Active()
	if err != nil {
		return "", err
	}

	for _, t := range active {
		if query.Contains(t) {
			return f.InstallPath(t)
		}
	}

	return "", fmt.Errorf("%w active for %q", ErrNoMatchingPython, query)
}

// FindOwn locates the interpreter bundled with PythonUp's own
// installation.
func (f *Finder) FindOwn() (string, error) {
	key, err := f.store.Open(store.CurrentUser, ownInstallKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return "", fmt.Errorf("%w: PythonUp itself is not installed", ErrNoMatchingPython)
		}

		return "", fmt.Errorf("locating the PythonUp installation: %w", err)
	}
	defer key.Close()

	root, err := key.DefaultValue()
	if err != nil {
		return "", fmt.Errorf("locating the PythonUp installation: %w", err)
	}

	return joinPath(root, `lib\python\python.exe`), nil
}

// Installed returns the tags of every registered installation, in
// ascending order. The same tag registered in several locations is
// reported once. Entries that cannot be enumerated or parsed are
// skipped with a warning.
func (f *Finder) Installed() []tag.Tag {
	found := tag.NewSet()

	for _, loc := range installLocations {
		key, err := f.store.Open(loc.hive, loc.path)
		if err != nil {
			if !errors.Is(err, store.ErrKeyNotFound) {
				cmdlogger.Warnf("Skipping %v: %v", loc, err)
			}

			continue
		}

		for _, subkey := range key.Subkeys() {
			if subkey.Err != nil {
				cmdlogger.Warnf("Skipping an entry under %v: %v", loc, subkey.Err)

				continue
			}

			t, err := tag.Parse(subkey.Name)
			if err != nil {
				cmdlogger.Warnf("Skipping %v\\%s: %v", loc, subkey.Name, err)

				continue
			}

			found.Add(t)
		}

		key.Close()
	}

	return found.Sorted()
}

// Active returns the declared active versions in declaration order.
// Malformed entries are skipped with a warning. The error wraps
// ErrNoActiveVersions when no list is declared at all.
func (f *Finder) Active() ([]tag.Tag, error) {
	key, err := f.store.Open(store.CurrentUser, activeVersionsKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrNoActiveVersions
		}

		return nil, fmt.Errorf("reading active versions: %w", err)
	}
	defer key.Close()

	value, err := key.DefaultValue()
	if err != nil {
		if errors.Is(err, store.ErrValueNotFound) {
			return nil, ErrNoActiveVersions
		}

		return nil, fmt.Errorf("reading active versions: %w", err)
	}

	var tags []tag.Tag

	for _, entry := range strings.Split(value, ";") {
		t, err := tag.Parse(entry)
		if err != nil {
			cmdlogger.Warnf("Skipping active version %q: %v", entry, err)

			continue
		}

		tags = append(tags, t)
	}

	return tags, nil
}

// InstallPath resolves one concrete tag to its interpreter executable,
// taking the first location the tag's registration opens under. A
// registration that opens but cannot be read aborts the lookup.
func (f *Finder) InstallPath(t tag.Tag) (string, error) {
	for _, loc := range installLocations {
		key, err := f.store.Open(loc.hive, fmt.Sprintf(`%s\%v\InstallPath`, loc.path, t))
		if err != nil {
			continue
		}

		root, err := key.DefaultValue()
		key.Close()

		if err != nil {
			return "", fmt.Errorf("reading the install path of Python %v: %w", t, err)
		}

		return joinPath(root, "python.exe"), nil
	}

	return "", fmt.Errorf("%w: %v is not installed", ErrNoMatchingPython, t)
}

// joinPath appends a file name to a stored installation root. Stored
// roots are Windows paths whatever the host platform is, so this never
// goes through path/filepath.
func joinPath(root, name string) string {
	if strings.HasSuffix(root, `\`) {
		return root + name
	}

	return root + `\` + name
}
