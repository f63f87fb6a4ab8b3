package chunkapi_test

import (
	"context"

	"github.com/calcwork/chunkkernel/chunkapi"
	"github.com/calcwork/chunkkernel/chunkapi/mocks"
	"github.com/calcwork/chunkkernel/chunkapi/proto"
	"github.com/golang/mock/gomock"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(ClientTestSuite))

type ClientTestSuite struct{}

func (s *ClientTestSuite) TestElementwiseSquare(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	rpcCli := mocks.NewMockChunkKernelClient(ctrl)

	rpcCli.EXPECT().ElementwiseSquare(
		gomock.AssignableToTypeOf(context.TODO()),
		&proto.NumericSequence{Values: []float64{-2, 3}},
	).Return(
		&proto.NumericSequence{Values: []float64{4, 9}},
		nil,
	)

	cli := chunkapi.NewChunkKernelClient(context.TODO(), rpcCli)
	got, err := cli.ElementwiseSquare([]float64{-2, 3})
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.DeepEquals, []float64{4, 9})
}

func (s *ClientTestSuite) TestRangeSumOfSquares(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	rpcCli := mocks.NewMockChunkKernelClient(ctrl)

	rpcCli.EXPECT().RangeSumOfSquares(
		gomock.AssignableToTypeOf(context.TODO()),
		&proto.IntegerRange{Start: 0, End: 4},
	).Return(
		&proto.ScalarResult{Value: 14},
		nil,
	)

	cli := chunkapi.NewChunkKernelClient(context.TODO(), rpcCli)
	got, err := cli.RangeSumOfSquares(0, 4)
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.Equals, 14.0)
}

func (s *ClientTestSuite) TestSum(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	rpcCli := mocks.NewMockChunkKernelClient(ctrl)

	rpcCli.EXPECT().Sum(
		gomock.AssignableToTypeOf(context.TODO()),
		&proto.NumericSequence{Values: []float64{1, 2, 3}},
	).Return(
		&proto.ScalarResult{Value: 6},
		nil,
	)

	cli := chunkapi.NewChunkKernelClient(context.TODO(), rpcCli)
	got, err := cli.Sum([]float64{1, 2, 3})
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.Equals, 6.0)
}

func (s *ClientTestSuite) TestAverage(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	rpcCli := mocks.NewMockChunkKernelClient(ctrl)

	rpcCli.EXPECT().Average(
		gomock.AssignableToTypeOf(context.TODO()),
		&proto.NumericSequence{Values: []float64{2, 4, 6}},
	).Return(
		&proto.ScalarResult{Value: 4},
		nil,
	)

	cli := chunkapi.NewChunkKernelClient(context.TODO(), rpcCli)
	got, err := cli.Average([]float64{2, 4, 6})
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.Equals, 4.0)
}

func (s *ClientTestSuite) TestRemoteErrorPropagation(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	rpcCli := mocks.NewMockChunkKernelClient(ctrl)

	expErr := xerrors.New("transport unavailable")
	rpcCli.EXPECT().Sum(
		gomock.AssignableToTypeOf(context.TODO()),
		&proto.NumericSequence{Values: []float64{1}},
	).Return(nil, expErr)

	cli := chunkapi.NewChunkKernelClient(context.TODO(), rpcCli)
	_, err := cli.Sum([]float64{1})
	c.Assert(err, gc.Equals, expErr)
}
