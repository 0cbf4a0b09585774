package billno

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Bill numbers follow PREFIX-YYYYMMDD-NNNNNN, e.g. LPG-20260901-000042.
var pattern = regexp.MustCompile(`^[A-Z]{2,8}-\d{8}-\d{6}$`)

// Valid reports whether s matches the bill number format.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Generator produces sequential bill numbers for a prefix. The sequence
// resets when the date rolls over; uniqueness is still enforced by the
// database, the generator only keeps numbers readable.
type Generator struct {
	mu     sync.Mutex
	prefix string
	day    string
	seq    int
	now    func() time.Time
}

// NewGenerator creates a generator with the given prefix, uppercased.
func NewGenerator(prefix string) *Generator {
	return &Generator{
		prefix: strings.ToUpper(strings.TrimSpace(prefix)),
		now:    time.Now,
	}
}

// Next returns the next bill number.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	day := g.now().UTC().Format("20060102")
	if day != g.day {
		g.day = day
		g.seq = 0
	}
	g.seq++
	return fmt.Sprintf("%s-%s-%06d", g.prefix, day, g.seq)
}
