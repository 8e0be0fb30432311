package main

import (
	"context"
	"fmt"

	"github.com/muraenateam/jsbeautify/internal/audit"
	"github.com/muraenateam/jsbeautify/internal/config"
	"github.com/muraenateam/jsbeautify/internal/discover"
	"github.com/muraenateam/jsbeautify/log"
)

// runCrawl crawls seedURL, beautifying and scanning any JS it fetches,
// printing the discovered hosts and, with -audit and the configuration's
// audit section enabled, their anomaly status.
func runCrawl(cfg config.Configuration, seedURL string) error {
	d := discover.New(cfg)

	if err := d.Crawl(context.Background(), seedURL); err != nil {
		return err
	}

	d.SimplifyDomains()

	log.Important("%d host(s) discovered", len(d.Domains))

	var auditor *audit.Auditor
	if *auditFlag && cfg.Audit.Enabled {
		var err error
		auditor, err = audit.Open(cfg.Audit.MaxMindDBPath, cfg.Audit.RadiusKM)
		if err != nil {
			log.Warning("audit disabled, could not open MaxMind DB: %s", err)
			auditor = nil
		} else {
			defer auditor.Close()
		}
	}

	for _, host := range d.Domains {
		if auditor == nil {
			fmt.Println(host)
			continue
		}

		anomaly, err := auditor.Check(host)
		if err != nil {
			fmt.Printf("%s\t(audit failed: %s)\n", host, err)
			continue
		}
		if anomaly != nil {
			fmt.Printf("%s\tANOMALY moved %.1fkm\n", host, anomaly.Distance)
		} else {
			fmt.Println(host)
		}
	}

	return nil
}
