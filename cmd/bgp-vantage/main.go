// bgp-vantage - AS-level path inference over offline routing-table snapshots.
//
// The tool builds an immutable routing knowledge base from an AS
// relationship file, a routing-table dump and a destination list, then
// infers the AS path from each named vantage to every weighted
// destination and reports how differently the vantages perceive the
// network core.
//
// Usage:
//
//	bgp-vantage -relationships=as_rel.txt -routing-table=rib.txt \
//	    -destinations=sites.txt -vantages=servers.txt
//
// Environment variables (alternative to flags):
//
//	BGP_VANTAGE_RELATIONSHIPS - AS relationships file
//	BGP_VANTAGE_ROUTING_TABLE - Routing table dump
//	BGP_VANTAGE_DESTINATIONS  - Destination address list
//	BGP_VANTAGE_VANTAGES      - Vantage list (name,address)
//	BGP_VANTAGE_REDIS         - Redis URL (reconstruction cache)
//	BGP_VANTAGE_DATABASE      - PostgreSQL URL (report sink)
//	BGP_VANTAGE_CONFIG        - YAML config file
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hervehildenbrand/bgp-vantage/pkg/database"
	"github.com/hervehildenbrand/bgp-vantage/pkg/infer"
	"github.com/hervehildenbrand/bgp-vantage/pkg/kb"
	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
	"github.com/hervehildenbrand/bgp-vantage/pkg/view"
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("bgp-vantage starting...")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	start := time.Now()
	base, err := kb.Build(cfg.Relationships, cfg.RoutingTable, cfg.Destinations)
	if err != nil {
		log.Fatalf("Knowledge base construction failed: %v", err)
	}
	log.Printf("Knowledge base built in %v: %v", time.Since(start), base.Stats())
	log.Printf("Input fingerprint: %s", base.Fingerprint())

	// Connect to Redis (optional)
	var cache *infer.PathCache
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Invalid Redis URL: %v", err)
		} else {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err != nil {
				log.Printf("Warning: Redis connection failed: %v", err)
			} else {
				cache = infer.NewPathCache(client, base.Fingerprint())
				log.Printf("Connected to Redis: %s", cfg.RedisURL)
			}
		}
	}

	engine := infer.New(base, cache)

	vantages, err := view.LoadVantages(cfg.Vantages)
	if err != nil {
		log.Fatalf("Vantage loading failed: %v", err)
	}
	log.Printf("Loaded %d vantages", len(vantages))

	// One view per vantage. Views share the knowledge base read-only and
	// never touch each other, so accumulation parallelizes freely.
	views := make(map[string]*view.View, len(vantages))
	jobs := make(chan view.Vantage)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for vt := range jobs {
				v := view.New(engine)
				v.AddVantage(vt.Addr)
				mu.Lock()
				views[vt.Name] = v
				mu.Unlock()
			}
		}()
	}

	start = time.Now()
	for _, vt := range vantages {
		jobs <- vt
	}
	close(jobs)
	wg.Wait()
	log.Printf("Accumulated %d views in %v", len(views), time.Since(start))

	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(len(views))

	summaries := make([]models.ViewSummary, 0, len(names))
	for _, name := range names {
		s := views[name].Summary(name)
		summaries = append(summaries, s)
		fmt.Printf("%s %f %f\n", s.Name, s.HardCoreMean, s.AllSeenMean)
	}

	var distances []models.ViewDistance
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := views[names[i]], views[names[j]]
			core, coreOK := a.CoreDissimilarity(b)
			jaccard, jaccardOK := a.JaccardDissimilarity(b)
			d := models.ViewDistance{
				A:          names[i],
				B:          names[j],
				Core:       core,
				Jaccard:    jaccard,
				Comparable: coreOK && jaccardOK,
			}
			distances = append(distances, d)
			fmt.Printf("%s %s %f %f\n", d.A, d.B, d.Core, d.Jaccard)
		}
	}

	// Write the report to PostgreSQL if configured
	if cfg.DatabaseURL != "" {
		writer, err := database.NewReportWriter(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Database connection failed: %v", err)
		} else {
			if err := writer.WriteReport(base.Fingerprint(), summaries, distances); err != nil {
				log.Printf("Warning: Report write failed: %v", err)
			} else {
				log.Printf("Report stored")
			}
			writer.Close()
		}
	}
}
