package kb

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
	"github.com/hervehildenbrand/bgp-vantage/pkg/rib"
)

// Routing-table records are pipe-delimited; only these fields matter.
const (
	recordTypeField = 1 // "R" marks a route announcement
	prefixField     = 7 // announced prefix, address/length
	pathField       = 9 // space-separated AS path
)

// Build loads the three input files in order: AS relationships, routing
// table entries, destination addresses. Any missing file or malformed
// line aborts the build; a knowledge base never exists in a partial
// state.
func Build(relationshipsPath, routingTablePath, destinationsPath string) (*KnowledgeBase, error) {
	k := &KnowledgeBase{
		relations: make(map[asPair]models.Relation),
		v4:        rib.NewTable(),
		v6:        rib.NewTable(),
		weights:   make(map[netip.Prefix]uint64),
		asns:      make(models.ASNSet),
	}

	digest := xxhash.New()
	if err := k.loadRelationships(relationshipsPath, digest); err != nil {
		return nil, err
	}
	if err := k.loadRoutingTable(routingTablePath, digest); err != nil {
		return nil, err
	}
	if err := k.loadDestinations(destinationsPath, digest); err != nil {
		return nil, err
	}
	k.fingerprint = strconv.FormatUint(digest.Sum64(), 16)

	return k, nil
}

// loadRelationships reads "asA|asB|code" lines. Code -1 means A provides
// transit to B (stored directionally both ways), 0 means the pair peers.
// Other codes carry no relationship and are skipped. Lines starting with
// '#' are comments.
func (k *KnowledgeBase) loadRelationships(path string, digest io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open relationships file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(io.TeeReader(f, digest))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			return fmt.Errorf("%s:%d: want asA|asB|code, got %q", path, lineno, line)
		}
		a, err := models.ParseASN(fields[0])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		b, err := models.ParseASN(fields[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		code, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("%s:%d: relation code: %w", path, lineno, err)
		}
		switch code {
		case -1:
			k.relations[asPair{a, b}] = models.RelationProvides
			k.relations[asPair{b, a}] = models.RelationConsumes
		case 0:
			k.relations[asPair{a, b}] = models.RelationPeers
			k.relations[asPair{b, a}] = models.RelationPeers
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// loadRoutingTable reads pipe-delimited table-dump records, keeping only
// route announcements ("R"). Each record's AS-path field expands into
// concrete paths (AS-SETs multiply out), accumulated per announced prefix
// across all records; every ASN seen joins the known-ASN set.
func (k *KnowledgeBase) loadRoutingTable(path string, digest io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open routing table file: %w", err)
	}
	defer f.Close()

	perPrefix := make(map[netip.Prefix]models.PathSet)

	scanner := bufio.NewScanner(io.TeeReader(f, digest))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		fields := strings.Split(line, "|")
		if len(fields) <= recordTypeField {
			return fmt.Errorf("%s:%d: truncated record %q", path, lineno, line)
		}
		if fields[recordTypeField] != "R" {
			continue
		}
		if len(fields) <= pathField {
			return fmt.Errorf("%s:%d: route record with %d fields", path, lineno, len(fields))
		}

		paths, err := models.ParsePathField(fields[pathField])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		prefix, err := netip.ParsePrefix(fields[prefixField])
		if err != nil {
			return fmt.Errorf("%s:%d: prefix: %w", path, lineno, err)
		}
		prefix = netip.PrefixFrom(prefix.Addr().Unmap(), prefix.Bits()).Masked()

		set, ok := perPrefix[prefix]
		if !ok {
			set = make(models.PathSet)
			perPrefix[prefix] = set
		}
		set.AddAll(paths)
		for _, p := range paths {
			for _, hop := range p {
				k.asns.Add(hop)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	for prefix, set := range perPrefix {
		k.table(prefix.Addr()).Insert(prefix, set)
	}
	return nil
}

// loadDestinations reads one IP address per line and longest-matches each
// against the tables built by the previous pass. A match increments the
// matched prefix's traffic weight; an address covered by no announced
// prefix carries no routing information and is dropped.
func (k *KnowledgeBase) loadDestinations(path string, digest io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open destinations file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(io.TeeReader(f, digest))
	lineno := 0
	for scanner.Scan() {
		lineno++
		addr, err := netip.ParseAddr(scanner.Text())
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		if entry, ok := k.Lookup(addr.Unmap()); ok {
			k.weights[entry.Prefix]++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
