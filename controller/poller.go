package controller

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/itsmikesebringyo/ff-app/cache"
	"github.com/itsmikesebringyo/ff-app/model"
)

const (
	// How often the live loop looks at matchups while games are on.
	livePollFrequency = 10 * time.Second
	pollTickTimeout   = 30 * time.Second
)

// EvaluatePolling reports the refresh posture clients should adopt
// right now: a 10 second interval while games are live, nothing while
// idle.
func (c *controller) EvaluatePolling(ctx context.Context) (*model.PollingState, error) {
	state, err := c.GetNFLState(ctx)
	if err != nil {
		log.Printf("error getting nfl state for polling evaluation: %v", err)
	}
	week := ResolveWeek(c.clock.Now(), state).Week

	if IsGameTime(c.clock.Now(), HeuristicAndUpstream, week, state) {
		return &model.PollingState{IsLive: true, IntervalMs: int(livePollFrequency.Milliseconds())}, nil
	}
	return &model.PollingState{IsLive: false, IntervalMs: 0}, nil
}

// matchupSignature reduces a set of matchups to a comparable string so
// the loop can tell whether anything actually scored since the last
// tick. Entries are sorted so ordering from the platform doesn't matter.
func matchupSignature(matchups []model.Matchup) string {
	parts := make([]string, 0, len(matchups))
	for _, m := range matchups {
		parts = append(parts, fmt.Sprintf("%d:%.2f", m.RosterID, m.Points))
	}
	slices.Sort(parts)
	return strings.Join(parts, "|")
}

// RunLivePolling drives the live score loop until shutdown is closed.
// Every tick it checks the stored polling switch, whether games are
// live, and whether any score moved; only a real change triggers a
// standings recompute.
func (c *controller) RunLivePolling(shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(livePollFrequency)
	defer wg.Done()

	lastSignature := ""

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), pollTickTimeout)
			sig, err := c.pollOnce(ctx, lastSignature)
			cancel()
			if err != nil {
				log.Printf("%v", err)
				continue
			}
			lastSignature = sig
		}
	}
}

// pollOnce runs a single polling tick and returns the matchup signature
// to carry into the next tick.
func (c *controller) pollOnce(ctx context.Context, lastSignature string) (string, error) {
	status, err := c.PollingStatus(ctx)
	if err != nil {
		return lastSignature, fmt.Errorf("poll: error reading polling status: %v", err)
	}
	if !status.Enabled {
		return lastSignature, nil
	}

	// The state cache TTL keeps this to one upstream check every few
	// minutes even though the loop ticks every 10 seconds.
	state, err := c.GetNFLState(ctx)
	if err != nil {
		return lastSignature, fmt.Errorf("poll: error getting nfl state: %v", err)
	}
	week := ResolveWeek(c.clock.Now(), state).Week

	if !IsGameTime(c.clock.Now(), HeuristicAndUpstream, week, state) {
		return lastSignature, nil
	}

	matchups, err := c.weekMatchups(ctx, week, cache.LiveTTL)
	if err != nil {
		return lastSignature, fmt.Errorf("poll: %v", err)
	}

	sig := matchupSignature(matchups)
	if sig == lastSignature {
		return sig, nil
	}

	if _, err := c.RefreshWeek(ctx, week); err != nil {
		return lastSignature, fmt.Errorf("poll: error refreshing week %d: %v", week, err)
	}
	return sig, nil
}
