// Package payload defines the JSON schema for chunk inputs and provides
// strict decoders for it. A payload that cannot be interpreted as the
// expected shape aborts the call; there is no recovery and no partial
// result.
package payload

import (
	"encoding/json"
	"io"

	"golang.org/x/xerrors"
)

// ErrInvalidPayload is returned by the decoders in this package when the
// supplied input cannot be interpreted as the expected shape. Use
// xerrors.Is to detect it.
var ErrInvalidPayload = xerrors.New("invalid chunk payload")

// IntegerRange describes the half-open interval [Start, End). If End is
// less than or equal to Start the interval is empty; that is a defined
// value, not an error.
type IntegerRange struct {
	Start uint32
	End   uint32
}

// DecodeNumericSequence decodes a JSON array of numbers from r. Any other
// JSON value, any non-numeric array entry and any trailing data after the
// array yield an error wrapping ErrInvalidPayload.
func DecodeNumericSequence(r io.Reader) ([]float64, error) {
	dec := json.NewDecoder(r)

	var seq []float64
	if err := dec.Decode(&seq); err != nil {
		return nil, xerrors.Errorf("numeric sequence: %v: %w", err, ErrInvalidPayload)
	}
	if seq == nil {
		// A JSON null decodes without error but is not an array.
		return nil, xerrors.Errorf("numeric sequence: expected a JSON array: %w", ErrInvalidPayload)
	}
	if err := ensureNoTrailingData(dec); err != nil {
		return nil, err
	}

	return seq, nil
}

// DecodeIntegerRange decodes a JSON object of the form
// {"start": <uint32>, "end": <uint32>} from r. Both fields are required;
// unknown fields, ill-typed fields and trailing data yield an error
// wrapping ErrInvalidPayload.
func DecodeIntegerRange(r io.Reader) (IntegerRange, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var body struct {
		Start *uint32 `json:"start"`
		End   *uint32 `json:"end"`
	}
	if err := dec.Decode(&body); err != nil {
		return IntegerRange{}, xerrors.Errorf("integer range: %v: %w", err, ErrInvalidPayload)
	}
	if body.Start == nil {
		return IntegerRange{}, xerrors.Errorf("integer range: missing required field %q: %w", "start", ErrInvalidPayload)
	}
	if body.End == nil {
		return IntegerRange{}, xerrors.Errorf("integer range: missing required field %q: %w", "end", ErrInvalidPayload)
	}
	if err := ensureNoTrailingData(dec); err != nil {
		return IntegerRange{}, err
	}

	return IntegerRange{Start: *body.Start, End: *body.End}, nil
}

func ensureNoTrailingData(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return xerrors.Errorf("trailing data after payload: %w", ErrInvalidPayload)
	}
	return nil
}
