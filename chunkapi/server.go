package chunkapi

import (
	"context"

	"github.com/calcwork/chunkkernel/chunkapi/proto"
	"github.com/calcwork/chunkkernel/kernel"
)

var _ proto.ChunkKernelServer = (*ChunkKernelServer)(nil)

// ChunkKernelServer provides a gRPC layer for dispatching chunk payloads to
// the kernel functions. The server holds no state; every RPC operates solely
// on its own request and concurrent calls are safe.
type ChunkKernelServer struct {
}

// NewChunkKernelServer returns a new server instance.
func NewChunkKernelServer() *ChunkKernelServer {
	return new(ChunkKernelServer)
}

// ElementwiseSquare squares every entry of the input sequence, preserving
// length and order.
func (s *ChunkKernelServer) ElementwiseSquare(_ context.Context, req *proto.NumericSequence) (*proto.NumericSequence, error) {
	return &proto.NumericSequence{Values: kernel.ElementwiseSquare(req.Values)}, nil
}

// RangeSumOfSquares sums the squares of all integers in the half-open range
// [start, end).
func (s *ChunkKernelServer) RangeSumOfSquares(_ context.Context, req *proto.IntegerRange) (*proto.ScalarResult, error) {
	return &proto.ScalarResult{Value: kernel.RangeSumOfSquares(req.Start, req.End)}, nil
}

// Sum adds up the input sequence in input order.
func (s *ChunkKernelServer) Sum(_ context.Context, req *proto.NumericSequence) (*proto.ScalarResult, error) {
	return &proto.ScalarResult{Value: kernel.Sum(req.Values)}, nil
}

// Average computes the arithmetic mean of the input sequence. An empty
// sequence yields zero.
func (s *ChunkKernelServer) Average(_ context.Context, req *proto.NumericSequence) (*proto.ScalarResult, error) {
	return &proto.ScalarResult{Value: kernel.Average(req.Values)}, nil
}
