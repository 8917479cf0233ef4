// Command snapshot warms the raw feed cache so the server and the tests can
// run against disk instead of the live API.
package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/config"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/fetch"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/logging"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/store"
)

func main() {
	var (
		leagueID = flag.String("league", "", "league id (default from LEAGUE_ID)")
		rawRoot  = flag.String("raw-root", "", "root directory for raw snapshots (default from CACHE_DIR)")
		refresh  = flag.Bool("refresh", true, "refetch even when a fresh snapshot exists")
		probe    = flag.Bool("probe-live", true, "also probe the live roster endpoints")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := logging.Init(cfg.LogLevel, true)

	if *leagueID == "" {
		*leagueID = cfg.LeagueID
	}
	if *rawRoot == "" {
		*rawRoot = cfg.CacheDir
	}

	client := fetch.NewClient(store.NewSnapshotStore(*rawRoot), logrus.NewEntry(log))
	client.BaseURL = cfg.BaseURL
	client.CacheTTL = cfg.CacheTTL

	start := time.Now()

	csvBody, err := client.PlayersCSV(*refresh)
	if err != nil {
		log.Fatalf("players csv: %v", err)
	}
	log.WithField("bytes", len(csvBody)).Info("players csv snapshot written")

	picks, err := client.DraftPicks(*leagueID, *refresh)
	if err != nil {
		log.Fatalf("draft picks: %v", err)
	}
	log.WithField("picks", len(picks)).Info("draft picks snapshot written")

	if *probe {
		lr, err := client.LiveRosters(*leagueID)
		if err != nil {
			log.WithError(err).Warn("no live roster source")
		} else {
			log.WithFields(logrus.Fields{
				"source": lr.Source,
				"owned":  len(lr.OwnerByPlayer),
				"teams":  len(lr.IDsByTeam),
			}).Info("live rosters reachable")
		}
	}

	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("done")
}
