package mlp

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// TrainingPattern is a single labeled sample: an input vector and the output the Network should
// produce for it.
type TrainingPattern struct {
	Input  []float64
	Output []float64
}

// NewTrainingPattern returns a TrainingPattern with the given vectors. The vectors are not copied.
func NewTrainingPattern(input, output []float64) *TrainingPattern {
	return &TrainingPattern{input, output}
}

func (p *TrainingPattern) String() string {
	return "(" + VectorToString(p.Input) + ", " + VectorToString(p.Output) + ")"
}

// TrainingSet is an ordered list of TrainingPatterns that all have the same input and output
// lengths. It should be created with NewTrainingSet or ReadTrainingSet.
type TrainingSet struct {
	inputLength, outputLength int

	patterns []*TrainingPattern
}

// NewTrainingSet returns an empty TrainingSet for patterns with the given lengths. If either length
// is not positive, ErrNonPositiveSize is returned.
func NewTrainingSet(inputLength, outputLength int) (*TrainingSet, error) {
	if inputLength < 1 {
		return nil, errors.Wrapf(ErrNonPositiveSize, "Can't make training set with input length %d", inputLength)
	} else if outputLength < 1 {
		return nil, errors.Wrapf(ErrNonPositiveSize, "Can't make training set with output length %d", outputLength)
	}

	return &TrainingSet{inputLength: inputLength, outputLength: outputLength}, nil
}

// InputLength returns the length of the input vector of every pattern in the set.
func (set *TrainingSet) InputLength() int {
	return set.inputLength
}

// OutputLength returns the length of the output vector of every pattern in the set.
func (set *TrainingSet) OutputLength() int {
	return set.outputLength
}

// Size returns the number of patterns in the set.
func (set *TrainingSet) Size() int {
	return len(set.patterns)
}

// Pattern returns the pattern at the given index. It panics if the index is out of range.
func (set *TrainingSet) Pattern(i int) *TrainingPattern {
	return set.patterns[i]
}

// Patterns returns a copy of the list of patterns, in the order they were added. The patterns
// themselves are not copied.
func (set *TrainingSet) Patterns() []*TrainingPattern {
	ps := make([]*TrainingPattern, len(set.patterns))
	copy(ps, set.patterns)
	return ps
}

// Add appends a pattern to the set. If the lengths of its vectors don't match the set, type
// SizeMismatchError is returned.
func (set *TrainingSet) Add(p *TrainingPattern) error {
	if p == nil {
		return NilArgError{"Training pattern"}
	} else if len(p.Input) != set.inputLength {
		return SizeMismatchError{set.inputLength, len(p.Input), "pattern inputs"}
	} else if len(p.Output) != set.outputLength {
		return SizeMismatchError{set.outputLength, len(p.Output), "pattern outputs"}
	}

	set.patterns = append(set.patterns, p)
	return nil
}

// AddSet appends every pattern of the other set. Both sets must have the same input and output
// lengths.
func (set *TrainingSet) AddSet(other *TrainingSet) error {
	if other == nil {
		return NilArgError{"Training set"}
	} else if other.inputLength != set.inputLength {
		return errors.Wrapf(SizeMismatchError{set.inputLength, other.inputLength, "training set inputs"}, "Can't add incompatible training set")
	} else if other.outputLength != set.outputLength {
		return errors.Wrapf(SizeMismatchError{set.outputLength, other.outputLength, "training set outputs"}, "Can't add incompatible training set")
	}

	set.patterns = append(set.patterns, other.patterns...)
	return nil
}

// Contains returns whether or not the given pattern (not an equal one) is in the set.
func (set *TrainingSet) Contains(p *TrainingPattern) bool {
	for _, q := range set.patterns {
		if q == p {
			return true
		}
	}

	return false
}

// Remove removes the pattern at the given index, keeping the order of the others.
func (set *TrainingSet) Remove(i int) error {
	if i < 0 || i >= len(set.patterns) {
		return errors.Errorf("Can't remove pattern %d from training set of size %d", i, len(set.patterns))
	}

	set.patterns = append(set.patterns[:i], set.patterns[i+1:]...)
	return nil
}

// Clear removes every pattern from the set.
func (set *TrainingSet) Clear() {
	set.patterns = nil
}

// SeparateTestSet removes the contiguous range of 'size' patterns starting at 'index' and returns
// them as a new set, for use as a test set.
func (set *TrainingSet) SeparateTestSet(index, size int) (*TrainingSet, error) {
	if index < 0 || size < 0 || index+size > len(set.patterns) {
		return nil, errors.Errorf("Can't separate patterns [%d, %d) from training set of size %d", index, index+size, len(set.patterns))
	}

	test := &TrainingSet{inputLength: set.inputLength, outputLength: set.outputLength}
	test.patterns = append(test.patterns, set.patterns[index:index+size]...)

	set.patterns = append(set.patterns[:index], set.patterns[index+size:]...)
	return test, nil
}

// String returns the patterns of the set, one per line.
func (set *TrainingSet) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, p := range set.patterns {
		sb.WriteString("\t" + strconv.Itoa(i) + " : " + p.String() + "\n")
	}

	sb.WriteString("}")
	return sb.String()
}

// ReadTrainingSet reads a TrainingSet from text. The first line has the input length and the output
// length, and the second is blank. Every non-empty line after that is one pattern: the input values
// followed by the output values, separated by whitespace.
//
// Malformed input gives ErrFormat, wrapped with the line at which it occurred.
func ReadTrainingSet(r io.Reader) (*TrainingSet, error) {
	sc := newLineScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrapf(err, "Can't read training set\n")
		}

		return nil, errors.Wrapf(ErrFormat, "Can't read training set, missing header")
	}

	header := strings.Fields(sc.Text())
	if len(header) != 2 {
		return nil, errors.Wrapf(ErrFormat, "Can't read training set, header should have 2 values, has %d", len(header))
	}

	var lengths [2]int
	for i, f := range header {
		var err error
		if lengths[i], err = strconv.Atoi(f); err != nil {
			return nil, errors.Wrapf(ErrFormat, "Can't read training set, bad length %q in header", f)
		}
	}

	set, err := NewTrainingSet(lengths[0], lengths[1])
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read training set\n")
	}

	// skip the blank line
	if sc.Scan() && strings.TrimSpace(sc.Text()) != "" {
		return nil, errors.Wrapf(ErrFormat, "Can't read training set, line 2 should be blank")
	}

	line := 2
	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		} else if len(fields) != set.inputLength+set.outputLength {
			return nil, errors.Wrapf(ErrFormat, "Can't read training set, line %d has %d values, expected %d",
				line, len(fields), set.inputLength+set.outputLength)
		}

		vs := make([]float64, len(fields))
		for i, f := range fields {
			if vs[i], err = strconv.ParseFloat(f, 64); err != nil {
				return nil, errors.Wrapf(ErrFormat, "Can't read training set, bad value %q on line %d", f, line)
			}
		}

		set.patterns = append(set.patterns, &TrainingPattern{
			Input:  vs[:set.inputLength:set.inputLength],
			Output: vs[set.inputLength:],
		})
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "Can't read training set\n")
	}

	return set, nil
}

// ReadTrainingSetFile opens the file at the given path and reads a TrainingSet from it, as in
// ReadTrainingSet.
func ReadTrainingSetFile(path string) (*TrainingSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read training set, couldn't open file %s\n", path)
	}
	defer f.Close()

	return ReadTrainingSet(f)
}

// WriteTrainingSet writes the set in the format read by ReadTrainingSet.
func (set *TrainingSet) WriteTrainingSet(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(set.inputLength) + " " + strconv.Itoa(set.outputLength) + "\n\n")

	strs := make([]string, set.inputLength+set.outputLength)
	for _, p := range set.patterns {
		for i, v := range p.Input {
			strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		for i, v := range p.Output {
			strs[set.inputLength+i] = strconv.FormatFloat(v, 'g', -1, 64)
		}

		bw.WriteString(strings.Join(strs, " ") + "\n")
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "Can't write training set\n")
	}

	return nil
}

// WriteTrainingSetFile creates (or truncates) the file at the given path and writes the set to it.
func (set *TrainingSet) WriteTrainingSetFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't write training set, couldn't create file %s\n", path)
	}

	if err = set.WriteTrainingSet(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
