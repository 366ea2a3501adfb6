// internal/banned/banned.go
package banned

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// List is the banned-address list, persisted as a JSON array of entry
// strings. An entry is one of:
//
//	75.120.4.205     a single IP
//	75.120.4         a dotted network prefix (trailing dot allowed)
//	75.120.4/22      a network with explicit mask bits
//
// Matching keeps the legacy semantics the lobby operators rely on, so
// existing ban files carry over unchanged.
type List struct {
	mu      sync.RWMutex
	path    string
	entries []string
}

// Load reads the list from path, creating an empty file if absent.
func Load(path string) (*List, error) {
	l := &List{path: path}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create banned-list dir: %w", err)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to seed banned list: %w", err)
		}
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read banned list: %w", err)
	}
	if err := json.Unmarshal(data, &l.entries); err != nil {
		return nil, fmt.Errorf("failed to parse banned list: %w", err)
	}
	return l, nil
}

// Entries returns a sorted copy of the list.
func (l *List) Entries() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	sort.Strings(out)
	return out
}

// Add appends an entry if not already present and persists the list.
// Blank entries are ignored.
func (l *List) Add(entry string) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e == entry {
			return nil
		}
	}
	l.entries = append(l.entries, entry)
	return l.save()
}

// Remove deletes an entry if present and persists the list.
func (l *List) Remove(entry string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e == entry {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return l.save()
		}
	}
	return nil
}

// Match reports whether addr falls under any entry. Unparseable
// addresses never match.
func (l *List) Match(addr string) bool {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if entryMatches(e, addr, ip) {
			return true
		}
	}
	return false
}

func entryMatches(entry, addr string, ip netip.Addr) bool {
	if entry == addr {
		return true
	}
	if idx := strings.IndexByte(entry, '/'); idx != -1 {
		// Mask form: the network part may be abbreviated ("75.120.4/22").
		base := padOctets(entry[:idx])
		prefix, err := netip.ParsePrefix(base + entry[idx:])
		if err != nil {
			return false
		}
		return prefix.Masked().Contains(ip)
	}
	// Dotted prefix form: "192.168" or "192.168." bans the whole
	// network.
	prefix := strings.TrimSuffix(entry, ".")
	if prefix == "" || strings.Count(prefix, ".") >= 3 {
		return false
	}
	return strings.HasPrefix(addr, prefix+".")
}

// padOctets extends an abbreviated IPv4 network ("75.120.4") to four
// octets so it parses as an address.
func padOctets(s string) string {
	s = strings.TrimSuffix(s, ".")
	for strings.Count(s, ".") < 3 {
		s += ".0"
	}
	return s
}

// save persists the current entries; callers hold the write lock.
func (l *List) save() error {
	data, err := json.MarshalIndent(l.entries, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0o644)
}
