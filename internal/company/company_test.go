package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/paisa-quest/internal/game"
)

type scriptedRand struct {
	roll  float64
	event int
}

func (r scriptedRand) Float64() float64 { return r.roll }
func (r scriptedRand) IntN(n int) int   { return r.event % n }

func quiet(int) game.Rand { return scriptedRand{roll: 0.99} }

func newSim(t *testing.T, rand RandSource, mutate func(*Config)) *Sim {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := New(cfg, rand)
	require.NoError(t, err)
	return m
}

func TestInvestAppliesCategoryEffects(t *testing.T) {
	m := newSim(t, quiet, nil)
	s := m.Start()

	tests := []struct {
		id   string
		want Stats
	}{
		{id: "sales-team", want: Stats{Cash: 920000, Revenue: 70000, Employees: 12, MarketShare: 5, Satisfaction: 70}},
		{id: "market-research", want: Stats{Cash: 970000, Revenue: 58000, Employees: 10, MarketShare: 6, Satisfaction: 70}},
		{id: "support-center", want: Stats{Cash: 940000, Revenue: 60000, Employees: 10, MarketShare: 5, Satisfaction: 75}},
		{id: "product-development", want: Stats{Cash: 900000, Revenue: 75000, Employees: 10, MarketShare: 5, Satisfaction: 70}},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			next, err := m.Invest(s, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, next.Stats)
			assert.Equal(t, 1, next.Turn, "investing does not end the month")
		})
	}
	assert.Equal(t, DefaultConfig().Initial, s.Stats)
}

func TestInvestRejects(t *testing.T) {
	m := newSim(t, quiet, func(c *Config) { c.Initial.Cash = 40000 })
	s := m.Start()

	_, err := m.Invest(s, "gold")
	require.ErrorIs(t, err, game.ErrInvalidChoice)

	_, err = m.Invest(s, "digital-marketing")
	require.ErrorIs(t, err, ErrInsufficientFunds)

	s, err = m.Invest(s, "market-research")
	require.NoError(t, err)
	assert.Equal(t, 10000, s.Stats.Cash)
}

func TestNextMonthBooksProfit(t *testing.T) {
	m := newSim(t, quiet, nil)
	s, err := m.Invest(m.Start(), "market-research")
	require.NoError(t, err)

	s, err = m.NextMonth(s)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Turn)
	assert.Equal(t, 978000, s.Stats.Cash)
	assert.Nil(t, s.Pending)
}

func TestEventMustBeResolved(t *testing.T) {
	m := newSim(t, func(int) game.Rand { return scriptedRand{roll: 0.1, event: 1} }, nil)
	s, err := m.NextMonth(m.Start())
	require.NoError(t, err)
	require.NotNil(t, s.Pending)
	assert.Equal(t, "competitor", s.Pending.ID)

	_, err = m.NextMonth(s)
	require.ErrorIs(t, err, game.ErrInvalidChoice)
	_, err = m.Resolve(s, "surrender")
	require.ErrorIs(t, err, game.ErrInvalidChoice)

	resolved, err := m.Resolve(s, "features")
	require.NoError(t, err)
	assert.Nil(t, resolved.Pending)
	assert.Equal(t, Stats{Cash: 940000, Revenue: 50000, Employees: 10, MarketShare: 2, Satisfaction: 65}, resolved.Stats)
	assert.Contains(t, resolved.History, "Competitor Launch: Differentiated from competition")

	_, err = m.Resolve(resolved, "features")
	require.ErrorIs(t, err, game.ErrInvalidChoice)
}

func TestResolveClampsShareAndChecksFunds(t *testing.T) {
	m := newSim(t, func(int) game.Rand { return scriptedRand{roll: 0, event: 0} }, func(c *Config) {
		c.Initial.MarketShare = 1
		c.Initial.Cash = 20000
		c.Initial.Revenue = 100000
	})
	s, err := m.NextMonth(m.Start())
	require.NoError(t, err)
	require.Equal(t, "downturn", s.Pending.ID)
	assert.Equal(t, 70000, s.Stats.Cash)

	_, err = m.Resolve(s, "diversify")
	require.ErrorIs(t, err, ErrInsufficientFunds)

	s, err = m.Resolve(s, "cut-costs")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Stats.MarketShare)
	assert.Equal(t, 80000, s.Stats.Revenue)
}

func TestYearEndOutcome(t *testing.T) {
	lose := newSim(t, quiet, nil)
	s := lose.Start()
	var err error
	for s.Status == game.StatusOngoing {
		s, err = lose.NextMonth(s)
		require.NoError(t, err)
	}
	assert.Equal(t, game.StatusLost, s.Status, "break-even never reaches the target")
	assert.Equal(t, 12, s.Turn)
	assert.Equal(t, 1000000, s.Stats.Cash)

	_, err = lose.NextMonth(s)
	require.ErrorIs(t, err, game.ErrGameAlreadyOver)
	_, err = lose.Invest(s, "automation")
	require.ErrorIs(t, err, game.ErrGameAlreadyOver)

	win := newSim(t, quiet, func(c *Config) { c.WinCash = 1000000 })
	s, err = win.Invest(win.Start(), "automation")
	require.NoError(t, err)
	for s.Status == game.StatusOngoing {
		s, err = win.NextMonth(s)
		require.NoError(t, err)
	}
	// 850000 + 11 months of 30000 profit
	assert.Equal(t, 1180000, s.Stats.Cash)
	assert.Equal(t, game.StatusWon, s.Status)
}

func TestBankruptcyUsesUpdatedCash(t *testing.T) {
	m := newSim(t, quiet, func(c *Config) {
		c.Initial.Cash = 10000
		c.Initial.Revenue = 40000
	})
	s, err := m.NextMonth(m.Start())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Stats.Cash)
	assert.Equal(t, game.StatusOngoing, s.Status)

	s, err = m.NextMonth(s)
	require.NoError(t, err)
	assert.Equal(t, -10000, s.Stats.Cash)
	assert.Equal(t, game.StatusLost, s.Status)
	assert.Equal(t, 3, s.Turn)
}

func cheapest(choices []game.Choice) string {
	best := choices[0]
	for _, c := range choices[1:] {
		if c.Cost < best.Cost {
			best = c
		}
	}
	return best.ID
}

func TestSeededReplayIsIdentical(t *testing.T) {
	play := func() State {
		m := newSim(t, Seeded(42), nil)
		s := m.Start()
		var err error
		for s.Status == game.StatusOngoing {
			if s.Pending != nil {
				s, err = m.Resolve(s, cheapest(s.Pending.Choices))
			} else {
				s, err = m.NextMonth(s)
			}
			require.NoError(t, err)
		}
		return s
	}
	assert.Equal(t, play(), play())
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "short year", mutate: func(c *Config) { c.MaxTurns = 1 }},
		{name: "chance above one", mutate: func(c *Config) { c.EventChance = 1.5 }},
		{name: "duplicate investment", mutate: func(c *Config) { c.Investments[1].ID = c.Investments[0].ID }},
		{name: "event without choices", mutate: func(c *Config) { c.Events[0].Choices = nil }},
		{name: "events missing", mutate: func(c *Config) { c.Events = nil }},
		{name: "satisfaction out of range", mutate: func(c *Config) { c.Initial.Satisfaction = 120 }},
		{name: "unknown category", mutate: func(c *Config) { c.Investments[0].Category = "markting" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := New(cfg, quiet)
			require.ErrorIs(t, err, game.ErrConfiguration)
		})
	}
}
