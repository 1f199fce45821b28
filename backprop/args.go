package backprop

import (
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
	"github.com/sharnoff/mlp/hyperparams"
	"github.com/sharnoff/mlp/initializers"
	"io"
	"math/rand"
	"os"
)

// Result is sent to Args.Update after each run has completed.
type Result struct {
	// The number of runs completed so far, starting at 1
	Run int

	// The number of iterations used by the run, and the error of the Network at the end of it
	Iterations int
	Error      float64

	// The lowest error so far, including this run
	Best float64
}

// Order gives the order in which the patterns of a set are presented during one iteration, as a
// list of indexes. A nil Order presents them in the order they were added to the set.
type Order func(size int) []int

// Shuffled returns an Order that presents the patterns in a new random order every iteration,
// drawn from the given generator.
func Shuffled(rng *rand.Rand) Order {
	return func(size int) []int {
		return rng.Perm(size)
	}
}

// Restart sets the starting weights of a run in place of Args.Init. It is given the Network and a
// copy of the weights that the Network had when it was decorated.
type Restart func(net *mlp.Network, initial []float64) error

// Jittered returns a Restart that starts every run from the weights the Network had when it was
// decorated, plus uniform noise in [-limit, limit] drawn from the given generator. A limit of 0
// continues training from those weights unchanged.
func Jittered(rng *rand.Rand, limit float64) Restart {
	return func(net *mlp.Network, initial []float64) error {
		if limit < 0 {
			return errors.Errorf("Jitter limit must be >= 0 (%v)", limit)
		} else if err := net.SetWeights(initial); err != nil {
			return err
		} else if limit == 0 {
			return nil
		}

		return net.Jitter(rng, limit)
	}
}

// Args are the parameters of backpropagation training. DefaultArgs gives the usual values; Args can
// also be read from JSON with ReadArgs, in which case Init, Restart, Order and Update keep their
// defaults.
type Args struct {
	// The maximum number of runs, each of which starts from new weights given by Init or Restart.
	// Training stops early once the error is at most Tolerance. Must be >= 1.
	MaxRuns int

	// The maximum number of iterations (sweeps through the training set) of a single run. Must be
	// >= 0.
	MaxIterations int

	// The error that is good enough to stop at. Must be >= 0.
	Tolerance float64

	// The error of the Network is recalculated every ErrorUpdateInterval iterations, and only then
	// checked against Tolerance. Must be >= 1.
	ErrorUpdateInterval int

	// If Online is true, weights are updated after every pattern. Otherwise (the default), the
	// errors of every pattern are accumulated and weights are updated once per iteration.
	Online bool

	// The starting learning rate of every synapse, which then adapts on its own
	InitialLearningRate float64

	// Momentum is the share of each synapse's previous weight change that is added to the current
	// one. Growth and Shrink are the factors that a synapse's learning rate is multiplied by when
	// its successive weight changes have the same sign (Growth) or not (Shrink). All three are
	// evaluated at the current iteration of the run.
	Momentum mlp.HyperParameter
	Growth   mlp.HyperParameter
	Shrink   mlp.HyperParameter

	// Init gives the initial weights of each run. It is required unless Restart is set.
	Init mlp.Initializer

	// Restart, if not nil, is used instead of Init to set the weights at the start of each run.
	Restart Restart

	// Order is the order of the patterns within each iteration. It can be nil.
	Order Order

	// Update is called after each run. It can be nil.
	Update func(Result)
}

// The default values used by DefaultArgs
const (
	DefaultErrorUpdateInterval int     = 100
	DefaultLearningRate        float64 = 0.001
	DefaultMomentum            float64 = 0.9
	DefaultGrowth              float64 = 1.01
	DefaultShrink              float64 = 0.5
)

// DefaultArgs returns Args for a single batch run of 10000 iterations, with weights initialized
// uniformly in [-1, 1] from a generator seeded with 1.
func DefaultArgs() Args {
	return Args{
		MaxRuns:             1,
		MaxIterations:       10000,
		Tolerance:           0,
		ErrorUpdateInterval: DefaultErrorUpdateInterval,
		InitialLearningRate: DefaultLearningRate,
		Momentum:            hyperparams.Constant(DefaultMomentum),
		Growth:              hyperparams.Constant(DefaultGrowth),
		Shrink:              hyperparams.Constant(DefaultShrink),
		Init:                initializers.Default(1),
	}
}

// Validate returns an error if any of the Args are out of range or missing.
func (args Args) Validate() error {
	switch {
	case args.MaxRuns < 1:
		return errors.Errorf("MaxRuns must be >= 1 (%d)", args.MaxRuns)
	case args.MaxIterations < 0:
		return errors.Errorf("MaxIterations must be >= 0 (%d)", args.MaxIterations)
	case args.Tolerance < 0:
		return errors.Errorf("Tolerance must be >= 0 (%v)", args.Tolerance)
	case args.ErrorUpdateInterval < 1:
		return errors.Errorf("ErrorUpdateInterval must be >= 1 (%d)", args.ErrorUpdateInterval)
	case args.InitialLearningRate <= 0:
		return errors.Errorf("InitialLearningRate must be > 0 (%v)", args.InitialLearningRate)
	case args.Momentum == nil:
		return errors.Errorf("Momentum is nil")
	case args.Growth == nil:
		return errors.Errorf("Growth is nil")
	case args.Shrink == nil:
		return errors.Errorf("Shrink is nil")
	case args.Init == nil && args.Restart == nil:
		return errors.Errorf("Init and Restart are both nil")
	}

	return nil
}

// the JSON representation of Args
type encodedArgs struct {
	MaxRuns             int               `json:"max_runs"`
	MaxIterations       int               `json:"max_iterations"`
	Tolerance           float64           `json:"tolerance"`
	ErrorUpdateInterval int               `json:"error_update_interval"`
	Online              bool              `json:"online"`
	InitialLearningRate float64           `json:"initial_learning_rate"`
	Momentum            hyperparams.Param `json:"momentum"`
	Growth              hyperparams.Param `json:"growth"`
	Shrink              hyperparams.Param `json:"shrink"`
}

func (args Args) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodedArgs{
		MaxRuns:             args.MaxRuns,
		MaxIterations:       args.MaxIterations,
		Tolerance:           args.Tolerance,
		ErrorUpdateInterval: args.ErrorUpdateInterval,
		Online:              args.Online,
		InitialLearningRate: args.InitialLearningRate,
		Momentum:            hyperparams.Param{HyperParameter: args.Momentum},
		Growth:              hyperparams.Param{HyperParameter: args.Growth},
		Shrink:              hyperparams.Param{HyperParameter: args.Shrink},
	})
}

// UnmarshalJSON decodes Args; fields missing from the JSON keep their current values.
func (args *Args) UnmarshalJSON(data []byte) error {
	e := encodedArgs{
		MaxRuns:             args.MaxRuns,
		MaxIterations:       args.MaxIterations,
		Tolerance:           args.Tolerance,
		ErrorUpdateInterval: args.ErrorUpdateInterval,
		Online:              args.Online,
		InitialLearningRate: args.InitialLearningRate,
		Momentum:            hyperparams.Param{HyperParameter: args.Momentum},
		Growth:              hyperparams.Param{HyperParameter: args.Growth},
		Shrink:              hyperparams.Param{HyperParameter: args.Shrink},
	}

	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}

	args.MaxRuns = e.MaxRuns
	args.MaxIterations = e.MaxIterations
	args.Tolerance = e.Tolerance
	args.ErrorUpdateInterval = e.ErrorUpdateInterval
	args.Online = e.Online
	args.InitialLearningRate = e.InitialLearningRate
	args.Momentum = e.Momentum.HyperParameter
	args.Growth = e.Growth.HyperParameter
	args.Shrink = e.Shrink.HyperParameter
	return nil
}

// ReadArgs decodes Args from JSON, starting from DefaultArgs.
func ReadArgs(r io.Reader) (Args, error) {
	args := DefaultArgs()
	if err := json.NewDecoder(r).Decode(&args); err != nil {
		return args, errors.Wrapf(err, "Failed to decode training arguments\n")
	}

	return args, nil
}

// ReadArgsFile opens the file at the given path and decodes Args from it, as in ReadArgs.
func ReadArgsFile(path string) (Args, error) {
	f, err := os.Open(path)
	if err != nil {
		return Args{}, errors.Wrapf(err, "Failed to open training arguments file %s\n", path)
	}
	defer f.Close()

	return ReadArgs(f)
}
