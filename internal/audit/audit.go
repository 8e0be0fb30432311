// Package audit resolves the hosts internal/discover finds to a
// geographic location and flags hosts whose serving location jumps
// further than expected between two observations — the same
// geofencing idea module/watchdog applies to visitor IPs, applied here
// to the hosts a beautified script references.
package audit

import (
	"fmt"
	"net"
	"sync"

	"github.com/kellydunn/golang-geo"
	"github.com/oschwald/geoip2-golang"

	"github.com/muraenateam/jsbeautify/log"
)

// Location is a resolved MaxMind City record for a host, read with the
// geoip2-golang reader.
type Location struct {
	Host      string
	Country   string
	City      string
	Latitude  float64
	Longitude float64
	Radius    float64 // accuracy radius, km
}

// Anomaly describes a host whose resolved location moved further than
// RadiusKM between two observations.
type Anomaly struct {
	Host     string
	Previous Location
	Current  Location
	Distance float64 // km
}

// Auditor resolves hosts against a MaxMind City database and tracks
// their last-seen location to detect CDN/hijack anomalies.
type Auditor struct {
	RadiusKM float64

	db *geoip2.Reader

	mu   sync.Mutex
	seen map[string]Location
}

// Open opens the MaxMind database at path, mirroring
// module/watchdog.loadGeoDB's use of geoip2.Open.
func Open(path string, radiusKM float64) (*Auditor, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &Auditor{
		RadiusKM: radiusKM,
		db:       db,
		seen:     map[string]Location{},
	}, nil
}

// Close releases the underlying MaxMind database.
func (a *Auditor) Close() error {
	return a.db.Close()
}

// Resolve looks up a City record for host, the way core/db/ip.go's
// QueryMaxMind builds a MaxMindLookup from a MaxMindEntry, except the
// IP is whatever A record host currently resolves to.
func (a *Auditor) Resolve(host string) (Location, error) {
	ips, err := net.LookupIP(host)
	if err != nil || len(ips) == 0 {
		return Location{}, fmt.Errorf("resolving %s: %w", host, err)
	}

	city, err := a.db.City(ips[0])
	if err != nil {
		return Location{}, fmt.Errorf("maxmind lookup for %s (%s): %w", host, ips[0], err)
	}

	name := city.City.Names["en"]
	if len(name) < 2 {
		name = "-"
	}

	return Location{
		Host:      host,
		Country:   city.Country.IsoCode,
		City:      name,
		Latitude:  city.Location.Latitude,
		Longitude: city.Location.Longitude,
		Radius:    float64(city.Location.AccuracyRadius),
	}, nil
}

// Check resolves host and compares it against the last location seen
// for the same host, mirroring module/watchdog/geofence.go's
// Geofence.Intersection great-circle-distance check. It returns a
// non-nil *Anomaly when the new location is further than RadiusKM
// from the previous one.
func (a *Auditor) Check(host string) (*Anomaly, error) {
	current, err := a.Resolve(host)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	previous, known := a.seen[host]
	a.seen[host] = current
	a.mu.Unlock()

	if !known {
		return nil, nil
	}

	prevPoint := geo.NewPoint(previous.Latitude, previous.Longitude)
	currPoint := geo.NewPoint(current.Latitude, current.Longitude)
	distance := prevPoint.GreatCircleDistance(currPoint)

	if distance <= a.RadiusKM {
		return nil, nil
	}

	log.Warning("host %s moved %.1fkm (%s, %s -> %s, %s)",
		host, distance, previous.City, previous.Country, current.City, current.Country)

	return &Anomaly{
		Host:     host,
		Previous: previous,
		Current:  current,
		Distance: distance,
	}, nil
}

// CheckAll runs Check against every host and returns the anomalies
// found, logging and skipping hosts that fail to resolve.
func (a *Auditor) CheckAll(hosts []string) []Anomaly {
	var anomalies []Anomaly
	for _, host := range hosts {
		anomaly, err := a.Check(host)
		if err != nil {
			log.Debug("audit: %s", err)
			continue
		}
		if anomaly != nil {
			anomalies = append(anomalies, *anomaly)
		}
	}
	return anomalies
}
