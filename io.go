package mlp

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// newLineScanner returns a Scanner over the lines of r. A single line holds every weight of a neuron
// or every value of a pattern, so lines can be much longer than bufio.MaxScanTokenSize.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt32)
	return sc
}

// SaveWeights writes the weights of the Network as text. The first line holds the sizes of the
// input, hidden and output layers, separated by spaces, followed by a blank line. Then, for each
// hidden layer, there is one line per neuron with the weights of its source synapses (bias first),
// followed by a blank line. The output layer is written last in the same way, without the trailing
// blank line.
//
// Weights are written in the shortest form that reads back to the identical value.
func (net *Network) SaveWeights(w io.Writer) error {
	bw := bufio.NewWriter(w)

	sizes := net.bp.Sizes()
	strs := make([]string, len(sizes))
	for i, s := range sizes {
		strs[i] = strconv.Itoa(s)
	}

	bw.WriteString(strings.Join(strs, " ") + "\n\n")

	layers := net.activationLayers()
	for li, l := range layers {
		for _, id := range l.neurons {
			ss := net.neurons[id].sourceSynapses
			strs = strs[:0]
			for _, sid := range ss {
				strs = append(strs, strconv.FormatFloat(net.synapses[sid].weight, 'g', -1, 64))
			}

			bw.WriteString(strings.Join(strs, " ") + "\n")
		}

		if li != len(layers)-1 {
			bw.WriteString("\n")
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "Can't save weights, writing failed\n")
	}

	return nil
}

// SaveWeightsFile creates (or truncates) the file at the given path and writes the weights of the
// Network to it, as in SaveWeights.
func (net *Network) SaveWeightsFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't save weights, couldn't create file %s\n", path)
	}

	if err = net.SaveWeights(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// LoadWeights reads weights in the format written by SaveWeights and sets them on the Network. If
// the layer sizes in the header don't match the Network, or if any line is missing or has the wrong
// number of weights, ErrFormat is returned (wrapped with the location of the problem) and the
// weights of the Network are left unchanged.
func (net *Network) LoadWeights(r io.Reader) error {
	sc := newLineScanner(r)
	line := 0

	next := func() (string, error) {
		line++
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", errors.Wrapf(err, "Can't load weights, reading line %d failed\n", line)
			}

			return "", errors.Wrapf(ErrFormat, "Can't load weights, missing line %d", line)
		}

		return sc.Text(), nil
	}

	blank := func() error {
		str, err := next()
		if err != nil {
			return err
		} else if strings.TrimSpace(str) != "" {
			return errors.Wrapf(ErrFormat, "Can't load weights, line %d should be blank", line)
		}

		return nil
	}

	// header
	{
		str, err := next()
		if err != nil {
			return err
		}

		fields := strings.Fields(str)
		sizes := net.bp.Sizes()
		if len(fields) != len(sizes) {
			return errors.Wrapf(ErrFormat, "Can't load weights, header has %d layers, Network has %d", len(fields), len(sizes))
		}

		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return errors.Wrapf(ErrFormat, "Can't load weights, bad layer size %q in header", f)
			} else if n != sizes[i] {
				return errors.Wrapf(ErrFormat, "Can't load weights, header gives layer %d size %d, Network has %d", i, n, sizes[i])
			}
		}

		if err = blank(); err != nil {
			return err
		}
	}

	ws := make([]float64, 0, len(net.synapses))

	layers := net.activationLayers()
	for li, l := range layers {
		for _, id := range l.neurons {
			str, err := next()
			if err != nil {
				return err
			}

			fields := strings.Fields(str)
			if expected := len(net.neurons[id].sourceSynapses); len(fields) != expected {
				return errors.Wrapf(ErrFormat, "Can't load weights, line %d has %d weights, expected %d", line, len(fields), expected)
			}

			for _, f := range fields {
				w, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return errors.Wrapf(ErrFormat, "Can't load weights, bad weight %q on line %d", f, line)
				}

				ws = append(ws, w)
			}
		}

		if li != len(layers)-1 {
			if err := blank(); err != nil {
				return err
			}
		}
	}

	return net.SetWeights(ws)
}

// LoadWeightsFile opens the file at the given path and loads weights from it, as in LoadWeights.
func (net *Network) LoadWeightsFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "Can't load weights, couldn't open file %s\n", path)
	}
	defer f.Close()

	return net.LoadWeights(f)
}
