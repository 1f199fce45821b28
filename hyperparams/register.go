// Package hyperparams provides implementations of mlp.HyperParameter, along with a JSON encoding
// that records the type of each, so that they can be stored in configuration files:
//
//	{"type": "step", "value": [{"Iter": 0, "Val": 0.9}, {"Iter": 1000, "Val": 0.5}]}
package hyperparams

import (
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
)

var registry map[string]func() mlp.HyperParameter

func init() {
	list := []func() mlp.HyperParameter{
		func() mlp.HyperParameter { return Constant(0) }, // 0 is just a placeholder. It'll be decoded.
		func() mlp.HyperParameter { return Step(0) },
	}

	for _, f := range list {
		if err := Register(f); err != nil {
			panic(err.Error())
		}
	}
}

// Register adds a HyperParameter type, so that it can be decoded by Unmarshal. The constructor must
// return a pointer that the value can be decoded into with encoding/json.
func Register(f func() mlp.HyperParameter) error {
	if f == nil {
		return errors.Errorf("Can't register hyperparameter, constructor is nil")
	}

	if registry == nil {
		registry = make(map[string]func() mlp.HyperParameter)
	}

	name := f().TypeString()
	if _, ok := registry[name]; ok {
		return errors.Errorf("Can't register hyperparameter, name %q is already taken", name)
	}

	registry[name] = f
	return nil
}

type encoded struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// Marshal encodes the HyperParameter as JSON, along with its type.
func Marshal(hp mlp.HyperParameter) ([]byte, error) {
	if hp == nil {
		return nil, errors.Errorf("Can't encode hyperparameter, it is nil")
	}

	v, err := json.Marshal(hp)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to encode hyperparameter %q\n", hp.TypeString())
	}

	return json.Marshal(encoded{hp.TypeString(), v})
}

// Unmarshal decodes a HyperParameter that was encoded by Marshal. A plain number is also accepted,
// and gives a Constant.
func Unmarshal(data []byte) (mlp.HyperParameter, error) {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		return Constant(f), nil
	}

	var e encoded
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode hyperparameter\n")
	}

	c, ok := registry[e.Type]
	if !ok {
		return nil, errors.Errorf("No hyperparameter registered as %q", e.Type)
	}

	hp := c()
	if err := json.Unmarshal(e.Value, hp); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode hyperparameter %q\n", e.Type)
	}

	return hp, nil
}

// Param wraps a HyperParameter so that it can be used directly as a field of a JSON-encoded struct.
type Param struct {
	mlp.HyperParameter
}

func (p Param) MarshalJSON() ([]byte, error) {
	return Marshal(p.HyperParameter)
}

func (p *Param) UnmarshalJSON(data []byte) error {
	hp, err := Unmarshal(data)
	if err != nil {
		return err
	}

	p.HyperParameter = hp
	return nil
}
