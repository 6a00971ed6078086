package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type PriceToRentKind int

const (
	PriceToRentUnresolved PriceToRentKind = iota
	PriceToRentConstant
	PriceToRentLinear
)

func (k PriceToRentKind) String() string {
	switch k {
	case PriceToRentConstant:
		return "constant"
	case PriceToRentLinear:
		return "linear"
	default:
		return "unresolved"
	}
}

// PriceToRent is the price-to-rent trajectory over the holding period.
// The zero value is Unresolved.
type PriceToRent struct {
	Kind  PriceToRentKind
	Start float64
	End   float64
}

// Constant keeps the ratio flat for the whole holding period.
func Constant(value float64) PriceToRent {
	return PriceToRent{Kind: PriceToRentConstant, Start: value, End: value}
}

// LinearPath moves the ratio linearly from start (first month) to end (last month).
func LinearPath(start, end float64) PriceToRent {
	return PriceToRent{Kind: PriceToRentLinear, Start: start, End: end}
}

func Unresolved() PriceToRent {
	return PriceToRent{}
}

func (p PriceToRent) IsResolved() bool {
	return p.Kind != PriceToRentUnresolved
}

func (p PriceToRent) String() string {
	switch p.Kind {
	case PriceToRentConstant:
		return fmt.Sprintf("%.2f", p.Start)
	case PriceToRentLinear:
		return fmt.Sprintf("%.2f -> %.2f", p.Start, p.End)
	default:
		return "unresolved"
	}
}

// MarshalJSON writes a constant as a number, a path as [start, end] and
// an unresolved ratio as null.
func (p PriceToRent) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PriceToRentConstant:
		return json.Marshal(p.Start)
	case PriceToRentLinear:
		return json.Marshal([2]float64{p.Start, p.End})
	default:
		return []byte("null"), nil
	}
}

func (p *PriceToRent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = Unresolved()
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var pair []float64
		if err := json.Unmarshal(data, &pair); err != nil {
			return fmt.Errorf("price_to_rent: %w", err)
		}
		return p.fromPair(pair)
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("price_to_rent must be a number or a [start, end] pair: %w", err)
	}
	*p = Constant(value)
	return nil
}

func (p *PriceToRent) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value float64
	if err := unmarshal(&value); err == nil {
		*p = Constant(value)
		return nil
	}

	var pair []float64
	if err := unmarshal(&pair); err != nil {
		return fmt.Errorf("price_to_rent must be a number or a [start, end] pair: %w", err)
	}
	return p.fromPair(pair)
}

func (p *PriceToRent) fromPair(pair []float64) error {
	if len(pair) != 2 {
		return fmt.Errorf("price_to_rent pair needs exactly 2 values, got %d", len(pair))
	}
	*p = LinearPath(pair[0], pair[1])
	return nil
}
