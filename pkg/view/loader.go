package view

import (
	"bufio"
	"fmt"
	"net/netip"
	"os"
	"strings"
)

// Vantage is one named observation point from the vantage file.
type Vantage struct {
	Name string
	Addr netip.Addr
}

// LoadVantages reads comma-delimited "name,address" lines. Each line
// seeds one named view. A missing file or malformed line is fatal, like
// every other input parse failure.
func LoadVantages(path string) ([]Vantage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vantage file: %w", err)
	}
	defer f.Close()

	var vantages []Vantage
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		name, addrStr, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%s:%d: want name,address, got %q", path, lineno, line)
		}
		addr, err := netip.ParseAddr(addrStr)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		vantages = append(vantages, Vantage{Name: name, Addr: addr.Unmap()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vantages, nil
}
