package payload_test

import (
	"strings"

	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"

	"github.com/calcwork/chunkkernel/payload"
)

var _ = gc.Suite(new(PayloadTestSuite))

type PayloadTestSuite struct {
}

func (s *PayloadTestSuite) TestDecodeNumericSequence(c *gc.C) {
	seq, err := payload.DecodeNumericSequence(strings.NewReader("[1.5, 2, -3]"))
	c.Assert(err, gc.IsNil)
	c.Assert(seq, gc.DeepEquals, []float64{1.5, 2, -3})
}

func (s *PayloadTestSuite) TestDecodeEmptyNumericSequence(c *gc.C) {
	seq, err := payload.DecodeNumericSequence(strings.NewReader("[]"))
	c.Assert(err, gc.IsNil)
	c.Assert(seq, gc.HasLen, 0)
	c.Assert(seq, gc.Not(gc.IsNil), gc.Commentf("an empty array is a valid payload and must not decode to nil"))
}

func (s *PayloadTestSuite) TestDecodeMalformedNumericSequence(c *gc.C) {
	specs := []struct {
		descr string
		in    string
	}{
		{descr: "non-numeric entry", in: `[1, "two", 3]`},
		{descr: "object instead of array", in: `{"values": [1, 2]}`},
		{descr: "scalar instead of array", in: `42`},
		{descr: "null instead of array", in: `null`},
		{descr: "trailing data", in: `[1, 2] [3]`},
		{descr: "truncated payload", in: `[1, 2`},
	}

	for _, spec := range specs {
		comment := gc.Commentf("payload: %s", spec.descr)
		_, err := payload.DecodeNumericSequence(strings.NewReader(spec.in))
		c.Assert(err, gc.Not(gc.IsNil), comment)
		c.Assert(xerrors.Is(err, payload.ErrInvalidPayload), gc.Equals, true, comment)
	}
}

func (s *PayloadTestSuite) TestDecodeIntegerRange(c *gc.C) {
	r, err := payload.DecodeIntegerRange(strings.NewReader(`{"start": 3, "end": 9}`))
	c.Assert(err, gc.IsNil)
	c.Assert(r, gc.DeepEquals, payload.IntegerRange{Start: 3, End: 9})
}

func (s *PayloadTestSuite) TestDecodeInvertedIntegerRange(c *gc.C) {
	// An inverted range is a defined (empty) value, not a decode error.
	r, err := payload.DecodeIntegerRange(strings.NewReader(`{"start": 9, "end": 3}`))
	c.Assert(err, gc.IsNil)
	c.Assert(r, gc.DeepEquals, payload.IntegerRange{Start: 9, End: 3})
}

func (s *PayloadTestSuite) TestDecodeMalformedIntegerRange(c *gc.C) {
	specs := []struct {
		descr string
		in    string
	}{
		{descr: "missing start", in: `{"end": 9}`},
		{descr: "missing end", in: `{"start": 3}`},
		{descr: "unknown field", in: `{"start": 3, "end": 9, "step": 1}`},
		{descr: "non-integer bound", in: `{"start": 1.5, "end": 9}`},
		{descr: "negative bound", in: `{"start": -1, "end": 9}`},
		{descr: "ill-typed bound", in: `{"start": "3", "end": 9}`},
		{descr: "array instead of object", in: `[3, 9]`},
		{descr: "null instead of object", in: `null`},
		{descr: "trailing data", in: `{"start": 3, "end": 9} true`},
	}

	for _, spec := range specs {
		comment := gc.Commentf("payload: %s", spec.descr)
		_, err := payload.DecodeIntegerRange(strings.NewReader(spec.in))
		c.Assert(err, gc.Not(gc.IsNil), comment)
		c.Assert(xerrors.Is(err, payload.ErrInvalidPayload), gc.Equals, true, comment)
	}
}
