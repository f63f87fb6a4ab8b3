package chunkapi

import (
	"context"

	"github.com/calcwork/chunkkernel/chunkapi/proto"
)

//go:generate mockgen -package mocks -destination mocks/mock.go github.com/calcwork/chunkkernel/chunkapi/proto ChunkKernelClient

// ChunkKernelClient exposes the kernel functions of a remote gRPC server
// through plain Go signatures so that Go host processes can dispatch chunks
// without dealing with the wire representation.
type ChunkKernelClient struct {
	ctx context.Context
	cli proto.ChunkKernelClient
}

// NewChunkKernelClient returns a new client instance that delegates each
// kernel invocation to a remote server exposed via rpcClient.
func NewChunkKernelClient(ctx context.Context, rpcClient proto.ChunkKernelClient) *ChunkKernelClient {
	return &ChunkKernelClient{ctx: ctx, cli: rpcClient}
}

// ElementwiseSquare squares every entry of in, preserving length and order.
func (c *ChunkKernelClient) ElementwiseSquare(in []float64) ([]float64, error) {
	res, err := c.cli.ElementwiseSquare(c.ctx, &proto.NumericSequence{Values: in})
	if err != nil {
		return nil, err
	}
	return res.Values, nil
}

// RangeSumOfSquares sums the squares of all integers in [start, end).
func (c *ChunkKernelClient) RangeSumOfSquares(start, end uint32) (float64, error) {
	res, err := c.cli.RangeSumOfSquares(c.ctx, &proto.IntegerRange{Start: start, End: end})
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// Sum adds up the entries of in, in input order.
func (c *ChunkKernelClient) Sum(in []float64) (float64, error) {
	res, err := c.cli.Sum(c.ctx, &proto.NumericSequence{Values: in})
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// Average computes the arithmetic mean of in; an empty sequence yields zero.
func (c *ChunkKernelClient) Average(in []float64) (float64, error) {
	res, err := c.cli.Average(c.ctx, &proto.NumericSequence{Values: in})
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}
