package backprop

import (
	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
)

// Iterate performs a single iteration: one sweep through the set, in the order given by
// Args.Order. In batch mode the errors of every pattern are accumulated and the weights are updated
// once at the end; in online mode the weights are updated after each pattern.
func (bn *Network) Iterate(set *mlp.TrainingSet) error {
	var order []int
	if bn.args.Order != nil {
		order = bn.args.Order(set.Size())
		if len(order) != set.Size() {
			return errors.Errorf("Order gave %d indexes for a set of size %d", len(order), set.Size())
		}
	}

	if !bn.args.Online {
		bn.ResetSynapseErrors()
	}

	for i := 0; i < set.Size(); i++ {
		p := set.Pattern(i)
		if order != nil {
			p = set.Pattern(order[i])
		}

		if bn.args.Online {
			bn.ResetSynapseErrors()
		}

		if _, err := bn.Evaluate(p.Input); err != nil {
			return errors.Wrapf(err, "Evaluating pattern %d failed\n", i)
		} else if err = bn.Backpropagate(p.Output); err != nil {
			return errors.Wrapf(err, "Backpropagating pattern %d failed\n", i)
		}

		if bn.args.Online {
			bn.UpdateSynapseWeights()
		}
	}

	if !bn.args.Online {
		bn.UpdateSynapseWeights()
	}

	bn.iter++
	return nil
}

// Run trains the Network from the starting weights set by Initialize. It iterates until Args.MaxIterations have
// been used or the error is at most Args.Tolerance; the error is only recalculated every
// Args.ErrorUpdateInterval iterations (and once at the end), so a run may go past the iteration at
// which it first reached the tolerance.
//
// Run returns the number of iterations used and the final error of the Network.
func (bn *Network) Run(set *mlp.TrainingSet) (int, float64, error) {
	if err := bn.Initialize(); err != nil {
		return 0, 0, errors.Wrapf(err, "Initializing Network failed\n")
	}

	netErr, err := bn.CalculateError(set)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "Calculating initial error failed\n")
	}

	var iterations int
	stale := false
	for iterations < bn.args.MaxIterations && netErr > bn.args.Tolerance {
		iterations++

		if err = bn.Iterate(set); err != nil {
			return iterations, netErr, errors.Wrapf(err, "Iteration %d failed\n", iterations)
		}

		stale = true
		if iterations%bn.args.ErrorUpdateInterval == 0 {
			if netErr, err = bn.CalculateError(set); err != nil {
				return iterations, netErr, errors.Wrapf(err, "Calculating error after iteration %d failed\n", iterations)
			}

			stale = false
		}
	}

	if stale {
		if netErr, err = bn.CalculateError(set); err != nil {
			return iterations, netErr, errors.Wrapf(err, "Calculating final error failed\n")
		}
	}

	return iterations, netErr, nil
}

// Teacher trains Networks by backpropagation over several runs, keeping the weights of the best one.
// It implements mlp.Teacher.
type Teacher struct {
	// The set to train on. Required.
	TrainingSet *mlp.TrainingSet

	// Used only to report the out-of-sample measures of the TrainingLog. Can be nil.
	TestSet *mlp.TrainingSet

	Args Args
}

// NewTeacher returns a Teacher with the given sets and Args. The test set may be nil.
func NewTeacher(training, test *mlp.TrainingSet, args Args) *Teacher {
	return &Teacher{training, test, args}
}

// Name returns "BackpropagationTeacher"
func (t *Teacher) Name() string {
	return "BackpropagationTeacher"
}

// Train trains the Network, blocking until it is done. The best error starts as the error of the
// Network as it was given, with its current weights; runs are then performed while fewer than
// Args.MaxRuns have been done and the best error is above Args.Tolerance. After each run, if its
// error is lower than the best so far, its weights are kept. Runs that do no better are discarded.
//
// When Train returns, the Network has the best weights found and is no longer decorated, even if
// training failed partway. The TrainingLog has the number of runs, the iterations and error of the
// best run, and the measures of fit on the training set (and test set, if there is one).
func (t *Teacher) Train(net *mlp.Network) (*mlp.TrainingLog, error) {
	if net == nil {
		return nil, errors.Errorf("Can't train Network, Network is nil")
	} else if t.TrainingSet == nil {
		return nil, errors.Errorf("Can't train Network, training set is nil")
	} else if t.TrainingSet.Size() == 0 {
		return nil, errors.Wrapf(mlp.ErrEmptySet, "Can't train Network")
	}

	bn, err := Decorate(net, t.Args)
	if err != nil {
		return nil, err
	}

	bestWeights := bn.Weights()

	// if training fails partway, the Network is handed back with the best weights found so far
	defer func() {
		if !net.Decorated() {
			return
		}

		bn.SetWeights(bestWeights)
		bn.Undecorate()
	}()

	bestErr, err := bn.CalculateError(t.TrainingSet)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't train Network\n")
	}

	bestIter := 0

	runs := 0
	for runs < t.Args.MaxRuns && bestErr > t.Args.Tolerance {
		iterations, netErr, err := bn.Run(t.TrainingSet)
		if err != nil {
			return nil, errors.Wrapf(err, "Run %d failed\n", runs+1)
		}

		if netErr < bestErr {
			bestIter = iterations
			bestErr = netErr
			bestWeights = bn.Weights()
		}

		runs++

		if t.Args.Update != nil {
			t.Args.Update(Result{runs, iterations, netErr, bestErr})
		}
	}

	if err = bn.SetWeights(bestWeights); err != nil {
		return nil, errors.Wrapf(err, "Restoring best weights failed\n")
	}

	if net, err = bn.Undecorate(); err != nil {
		return nil, err
	}

	log := mlp.NewTrainingLog(runs, bestIter, bestErr)
	if err = log.CalculateMeasuresOfFit(net, t.TrainingSet); err != nil {
		return log, err
	}

	if t.TestSet != nil && t.TestSet.Size() != 0 {
		if err = log.CalculateForecastAccuracy(net, t.TestSet); err != nil {
			return log, err
		}
	}

	return log, nil
}
