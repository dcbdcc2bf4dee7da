package calculation

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// Simulator runs the intergenerational wealth simulation for one
// population under one immutable parameter set.
type Simulator struct {
	Config    *domain.ModelConfig
	NumPeople int
	Seed      uint64 // 0 means derive from the clock
	Logger    Logger
}

// NewSimulator creates a simulator. A zero seed is replaced with a
// time-derived one so every run remains reproducible from its result.
func NewSimulator(cfg *domain.ModelConfig, numPeople int, seed uint64) *Simulator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Simulator{
		Config:    cfg,
		NumPeople: numPeople,
		Seed:      seed,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (s *Simulator) SetLogger(l Logger) {
	if l == nil {
		s.Logger = NopLogger{}
		return
	}
	s.Logger = l
}

// Validate rejects invalid configuration before any simulation work.
func (s *Simulator) Validate() error {
	if s.Config == nil {
		return fmt.Errorf("model configuration is required")
	}
	cfg := s.Config
	if s.NumPeople < 2 {
		return fmt.Errorf("population size must be at least 2, got %d", s.NumPeople)
	}
	if err := ValidateMPCParams(cfg.MPC); err != nil {
		return fmt.Errorf("MPC parameters: %w", err)
	}
	if cfg.Income.BaseIncome <= 0 {
		return fmt.Errorf("base income must be positive, got %v", cfg.Income.BaseIncome)
	}
	if cfg.Income.Volatility < 0 {
		return fmt.Errorf("income volatility cannot be negative, got %v", cfg.Income.Volatility)
	}
	if cfg.Returns.Volatility < 0 {
		return fmt.Errorf("return volatility cannot be negative, got %v", cfg.Returns.Volatility)
	}
	if cfg.BorrowingLimitShare < 0 {
		return fmt.Errorf("borrowing limit share cannot be negative, got %v", cfg.BorrowingLimitShare)
	}
	if cfg.InitialWealth.ParetoShape <= 0 {
		return fmt.Errorf("Pareto shape must be positive, got %v", cfg.InitialWealth.ParetoShape)
	}
	if cfg.InitialWealth.WealthScale <= 0 {
		return fmt.Errorf("wealth scale must be positive, got %v", cfg.InitialWealth.WealthScale)
	}
	d := cfg.Demographics
	if d.RetirementAge <= d.ChildStartAge {
		return fmt.Errorf("retirement age %d must be after child start age %d", d.RetirementAge, d.ChildStartAge)
	}
	if d.BequestAgeMax < d.BequestAgeMin {
		return fmt.Errorf("bequest age range is inverted: [%d, %d]", d.BequestAgeMin, d.BequestAgeMax)
	}
	if d.NoBequestThreshold < 0 || d.NoBequestThreshold > 1 {
		return fmt.Errorf("no-bequest threshold must be in [0, 1], got %v", d.NoBequestThreshold)
	}
	if cfg.SimulationYears <= 0 {
		return fmt.Errorf("simulation years must be positive, got %d", cfg.SimulationYears)
	}
	return nil
}

// bequestSchedule holds the population-wide bequest assignment: who
// inherits, at what age the parent dies, and how much is passed on.
type bequestSchedule struct {
	willReceive []bool
	deathAge    []int
	amount      []float64
}

// RunSimulation executes one full run: draw the parent wealth distribution,
// create the child population, assign bequests, simulate every person for
// the configured number of years, and compute the final rank vectors.
func (s *Simulator) RunSimulation() (*domain.SimulationResult, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("simulation configuration invalid: %w", err)
	}

	cfg := s.Config
	n := s.NumPeople
	rng := rand.New(rand.NewSource(s.Seed))
	s.Logger.Infof("starting simulation: people=%d years=%d seed=%d", n, cfg.SimulationYears, s.Seed)

	// Parent wealth is a static scalar per child; parents are never
	// simulated themselves.
	parentWealth := s.drawParentWealth(rng)
	parentRanks := ParentRanks(parentWealth)

	people := make([]*domain.Person, n)
	for i := range people {
		rank := parentRanks[i]
		people[i] = domain.NewPerson(cfg.Demographics.ChildStartAge, 0, &rank, cfg.Income)
	}

	schedule := s.drawBequestSchedule(rng, parentWealth, parentRanks)

	lc := newLifeCycle(cfg, rng)
	for year := 0; year < cfg.SimulationYears; year++ {
		for i, p := range people {
			// Age strictly increases, so the bequest lands at most once.
			if p.Age == schedule.deathAge[i] {
				p.Wealth += schedule.amount[i]
			}
			lc.SimulateYear(p, year, cfg.MPC)
		}
	}

	result := &domain.SimulationResult{
		People:             people,
		BequestRanks:       BequestRanks(schedule.amount, cfg.Demographics.NoBequestThreshold),
		WillReceiveBequest: schedule.willReceive,
		BequestDeathAges:   schedule.deathAge,
		BequestAmounts:     schedule.amount,
		NumPeople:          n,
		Years:              cfg.SimulationYears,
		Seed:               s.Seed,
	}
	result.WealthRanks = WealthRanks(result.FinalWealth())

	s.Logger.Infof("simulation complete: people=%d", len(result.People))
	return result, nil
}

// drawParentWealth samples the parent generation's wealth from a Pareto
// distribution scaled by the wealth scale and base income.
func (s *Simulator) drawParentWealth(rng *rand.Rand) []float64 {
	pareto := distuv.Pareto{
		Xm:    1,
		Alpha: s.Config.InitialWealth.ParetoShape,
		Src:   rng,
	}
	scale := s.Config.InitialWealth.WealthScale * s.Config.Income.BaseIncome
	wealth := make([]float64, s.NumPeople)
	for i := range wealth {
		wealth[i] = pareto.Rand() * scale
	}
	return wealth
}

// drawBequestSchedule determines bequest eligibility by parent rank
// threshold, then draws a parent death age uniformly from the configured
// range and a uniform share of parent wealth for each eligible child.
func (s *Simulator) drawBequestSchedule(rng *rand.Rand, parentWealth, parentRanks []float64) bequestSchedule {
	d := s.Config.Demographics
	n := s.NumPeople
	schedule := bequestSchedule{
		willReceive: make([]bool, n),
		deathAge:    make([]int, n),
		amount:      make([]float64, n),
	}
	ageSpan := d.BequestAgeMax - d.BequestAgeMin + 1
	for i := 0; i < n; i++ {
		schedule.willReceive[i] = parentRanks[i] >= d.NoBequestThreshold
		schedule.deathAge[i] = d.BequestAgeMin + rng.Intn(ageSpan)
		if schedule.willReceive[i] {
			schedule.amount[i] = parentWealth[i] * rng.Float64()
		}
	}
	return schedule
}
