// naming.go — timestamped export file names and conflict resolution.

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/gametree/core"
)

// DefaultStampLayout is the minute-resolution timestamp appended to every
// export file name.
const DefaultStampLayout = "20060102-1504"

// ErrEmptyPath indicates a conflict-resolution request without a path.
var ErrEmptyPath = fmt.Errorf("%w: empty export path", core.ErrValidation)

// badNameChars are rejected by ValidateName; they are path separators or
// reserved characters on at least one supported platform.
const badNameChars = `\/:*?"<>|`

// NamingService produces export file names. The zero value is not usable;
// construct with NewNamingService.
type NamingService struct {
	layout string
	now    func() time.Time
}

// NamingOption tunes a NamingService.
type NamingOption func(*NamingService)

// WithStampLayout overrides the timestamp layout.
func WithStampLayout(layout string) NamingOption {
	return func(n *NamingService) { n.layout = layout }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) NamingOption {
	return func(n *NamingService) { n.now = now }
}

// NewNamingService returns a service stamping names with DefaultStampLayout.
func NewNamingService(opts ...NamingOption) *NamingService {
	n := &NamingService{layout: DefaultStampLayout, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Timestamp returns the current time rendered in the configured layout.
func (n *NamingService) Timestamp() string {
	return n.now().Format(n.layout)
}

// FormatPrefix trims the prefix, replaces inner spaces with underscores and
// falls back to "export" when nothing remains.
func (n *NamingService) FormatPrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "export"
	}

	return strings.ReplaceAll(prefix, " ", "_")
}

// ValidateName reports whether name is non-empty and free of reserved
// characters.
func (n *NamingService) ValidateName(name string) bool {
	return name != "" && !strings.ContainsAny(name, badNameChars)
}

// FileName builds "<prefix>_J<players>_R<rounds>_E<branching>_<stamp>".
// The extension is the caller's business.
func (n *NamingService) FileName(players, rounds, branching int, prefix string) string {
	return fmt.Sprintf("%s_J%d_R%d_E%d_%s",
		n.FormatPrefix(prefix), players, rounds, branching, n.Timestamp())
}

// ResolveConflict returns path unchanged when nothing occupies it, or the
// first "<base>_<k><ext>" variant that is free.
func (n *NamingService) ResolveConflict(path string) (string, error) {
	if path == "" {
		return "", core.Domainf(ErrEmptyPath,
			"The export path cannot be empty.", "ResolveConflict: empty path")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
}
