package mlp

import (
	"fmt"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"math"
)

// TrainingLog is the summary of a training session, as returned by Teacher.Train.
type TrainingLog struct {
	// The number of runs performed, the number of iterations of the best run, and the error of the
	// Network after the best run
	RunCount       int
	IterationCount int
	NetworkError   float64

	// Within-sample measures of fit, set by CalculateMeasuresOfFit
	RSSTrainingSet float64
	RSDTrainingSet float64
	AIC            float64
	AICc           float64
	BIC            float64
	SBC            float64

	// Out-of-sample measures, set by CalculateForecastAccuracy
	RSSTestSet float64
	RSDTestSet float64
}

// NewTrainingLog returns a TrainingLog with the given results and no measures of fit.
func NewTrainingLog(runCount, iterationCount int, networkError float64) *TrainingLog {
	return &TrainingLog{
		RunCount:       runCount,
		IterationCount: iterationCount,
		NetworkError:   networkError,
	}
}

// rss returns the residual sum of squares of the Network on the set, summed over every output
func rss(net *Network, set *TrainingSet) (float64, error) {
	if err := net.checkSet(set); err != nil {
		return 0, err
	} else if len(set.patterns) == 0 {
		return 0, errors.Wrapf(ErrEmptySet, "Can't calculate residual sum of squares")
	}

	residuals := make([]float64, set.outputLength)

	var sum float64
	for i, p := range set.patterns {
		out, err := net.Evaluate(p.Input)
		if err != nil {
			return 0, errors.Wrapf(err, "Evaluating pattern %d failed\n", i)
		}

		floats.SubTo(residuals, out, p.Output)
		sum += floats.Dot(residuals, residuals)
	}

	return sum, nil
}

// CalculateMeasuresOfFit sets the within-sample statistics of the log, where n is the number of
// patterns in the set and p is the number of synapses in the Network:
//	RSS  = sum of squared residuals over every output of every pattern
//	RSD  = sqrt(RSS / n)
//	AIC  = n*ln(RSS/n) + 2p
//	AICc = AIC + 2(p+1)(p+2)/(n-p-2)  (NaN if n-p-2 <= 0)
//	BIC  = n*ln(RSS/n) + p + p*ln(n)
//	SBC  = n*ln(RSS/n) + p*ln(n)
func (log *TrainingLog) CalculateMeasuresOfFit(net *Network, set *TrainingSet) error {
	if net == nil {
		return NilArgError{"Network"}
	} else if set == nil {
		return NilArgError{"Training set"}
	}

	r, err := rss(net, set)
	if err != nil {
		return errors.Wrapf(err, "Can't calculate measures of fit\n")
	}

	n := float64(set.Size())
	p := float64(net.SynapseCount())
	ll := n * math.Log(r/n)

	log.RSSTrainingSet = r
	log.RSDTrainingSet = math.Sqrt(r / n)
	log.AIC = ll + 2*p
	if d := n - p - 2; d > 0 {
		// float division; the correction term is not truncated
		log.AICc = log.AIC + 2*(p+1)*(p+2)/d
	} else {
		log.AICc = math.NaN()
	}
	log.BIC = ll + p + p*math.Log(n)
	log.SBC = ll + p*math.Log(n)

	return nil
}

// CalculateForecastAccuracy sets the out-of-sample statistics of the log: the residual sum of
// squares of the Network on the test set, and the residual standard deviation sqrt(RSS / n).
func (log *TrainingLog) CalculateForecastAccuracy(net *Network, set *TrainingSet) error {
	if net == nil {
		return NilArgError{"Network"}
	} else if set == nil {
		return NilArgError{"Test set"}
	}

	r, err := rss(net, set)
	if err != nil {
		return errors.Wrapf(err, "Can't calculate forecast accuracy\n")
	}

	log.RSSTestSet = r
	log.RSDTestSet = math.Sqrt(r / float64(set.Size()))
	return nil
}

func (log *TrainingLog) String() string {
	return fmt.Sprintf("runs: %d, iterations: %d, error: %g\n"+
		"training set: RSS %g, RSD %g, AIC %g, AICc %g, BIC %g, SBC %g\n"+
		"test set: RSS %g, RSD %g",
		log.RunCount, log.IterationCount, log.NetworkError,
		log.RSSTrainingSet, log.RSDTrainingSet, log.AIC, log.AICc, log.BIC, log.SBC,
		log.RSSTestSet, log.RSDTestSet)
}
