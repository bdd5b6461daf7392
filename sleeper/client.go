package sleeper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/itsmikesebringyo/ff-app/model"
)

const SleeperURL = "https://api.sleeper.app"

// Per-resource timeouts. The player directory is a very large payload,
// matchups and projections are on the hot path during live games.
const (
	defaultTimeout     = 10 * time.Second
	matchupsTimeout    = 15 * time.Second
	projectionsTimeout = 15 * time.Second
	playersTimeout     = 30 * time.Second

	maxAttempts = 3
	retryDelay  = time.Second
)

type Client interface {
	GetRosters(leagueID string) ([]model.Roster, error)
	GetUsers(leagueID string) ([]model.LeagueUser, error)
	GetMatchups(leagueID string, week int) ([]model.Matchup, error)
	// LoadPlayers fetches the full NFL player directory. Large; call sparingly.
	LoadPlayers() (map[string]model.PlayerInfo, error)
	// GetProjections returns projected PPR points per player id. Only
	// entries carrying a PPR projection are retained.
	GetProjections(seasonType, season string, week int) (map[string]float64, error)
	GetNFLState() (*model.NFLState, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return &client{
		url:        SleeperURL,
		httpClient: &http.Client{},
	}, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: &http.Client{},
	}
}

func (c *client) GetRosters(leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	err := c.getJSON(fmt.Sprintf("/v1/league/%s/rosters", url.PathEscape(leagueID)), defaultTimeout, &parsed)
	if err != nil {
		return nil, fmt.Errorf("error loading rosters: %w", err)
	}

	result := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		result = append(result, *r.toRoster())
	}
	return result, nil
}

func (c *client) GetUsers(leagueID string) ([]model.LeagueUser, error) {
	var parsed []sleeperUser
	err := c.getJSON(fmt.Sprintf("/v1/league/%s/users", url.PathEscape(leagueID)), defaultTimeout, &parsed)
	if err != nil {
		return nil, fmt.Errorf("error loading users: %w", err)
	}

	result := make([]model.LeagueUser, 0, len(parsed))
	for _, u := range parsed {
		result = append(result, *u.toUser())
	}
	return result, nil
}

func (c *client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	var parsed []sleeperMatchup
	err := c.getJSON(fmt.Sprintf("/v1/league/%s/matchups/%d", url.PathEscape(leagueID), week), matchupsTimeout, &parsed)
	if err != nil {
		return nil, fmt.Errorf("error loading matchups for week %d: %w", week, err)
	}

	result := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		result = append(result, *m.toMatchup())
	}
	return result, nil
}

func (c *client) LoadPlayers() (map[string]model.PlayerInfo, error) {
	var parsed map[string]sleeperPlayer
	err := c.getJSON("/v1/players/nfl", playersTimeout, &parsed)
	if err != nil {
		return nil, fmt.Errorf("error loading players: %w", err)
	}

	result := make(map[string]model.PlayerInfo, len(parsed))
	for id, p := range parsed {
		result[id] = *p.toPlayerInfo(id)
	}
	return result, nil
}

func (c *client) GetProjections(seasonType, season string, week int) (map[string]float64, error) {
	var parsed map[string]sleeperProjection
	path := fmt.Sprintf("/v1/projections/nfl/%s/%s/%d", url.PathEscape(seasonType), url.PathEscape(season), week)
	err := c.getJSON(path, projectionsTimeout, &parsed)
	if err != nil {
		return nil, fmt.Errorf("error loading projections for week %d: %w", week, err)
	}

	// Keep only entries with a PPR point projection. The endpoint also
	// returns kicking and IDP stat lines we have no use for.
	result := make(map[string]float64, len(parsed))
	for id, p := range parsed {
		if p.PtsPPR != nil {
			result[id] = *p.PtsPPR
		}
	}
	return result, nil
}

func (c *client) GetNFLState() (*model.NFLState, error) {
	var parsed sleeperNFLState
	if err := c.getJSON("/v1/state/nfl", defaultTimeout, &parsed); err != nil {
		return nil, fmt.Errorf("error loading nfl state: %w", err)
	}
	return parsed.toNFLState(), nil
}

// getJSON fetches path and decodes the body into out. Transport errors
// are retried with a linear backoff; HTTP error statuses are not.
func (c *client) getJSON(path string, timeout time.Duration, out any) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(retryDelay * time.Duration(attempt-1))
		}

		err := c.getJSONOnce(path, timeout, out)
		if err == nil {
			return nil
		}
		lastErr = err

		var se *statusError
		if errors.As(err, &se) {
			// Upstream answered. Retrying won't change the answer.
			return err
		}
	}
	return fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}

func (c *client) getJSONOnce(path string, timeout time.Duration, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}

	hc := *c.httpClient
	hc.Timeout = timeout

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.code)
}
