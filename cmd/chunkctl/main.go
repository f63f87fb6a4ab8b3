package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/calcwork/chunkkernel/chunkapi"
	"github.com/calcwork/chunkkernel/chunkapi/proto"
	"github.com/calcwork/chunkkernel/payload"
	"github.com/calcwork/chunkkernel/tracer"
	"github.com/grpc-ecosystem/grpc-opentracing/go/otgrpc"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
)

var (
	appName = "chunkctl"
	appSha  = "populated-at-link-time"
	logger  *logrus.Entry
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	rootLogger.SetFormatter(new(logrus.JSONFormatter))
	logger = rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSha,
		"host": host,
	})

	if err := makeApp().Run(os.Args); err != nil {
		logger.WithField("err", err).Error("command failed")
		_ = os.Stderr.Sync()
		os.Exit(1)
	}
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSha
	app.Usage = "Dispatch a single chunk payload (read from stdin) to a running chunkd instance"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "kernel-api",
			EnvVar: "KERNEL_API",
			Usage:  "The gRPC endpoint for connecting to the chunk kernel",
		},
		cli.DurationFlag{
			Name:   "dial-timeout",
			Value:  5 * time.Second,
			EnvVar: "DIAL_TIMEOUT",
			Usage:  "The timeout for establishing a connection to the chunk kernel",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "square",
			Usage:  "Square each entry of a numeric sequence payload",
			Action: runKernel(runElementwiseSquare),
		},
		{
			Name:   "range-sum-squares",
			Usage:  "Sum the squares of every integer in an integer range payload",
			Action: runKernel(runRangeSumOfSquares),
		},
		{
			Name:   "sum",
			Usage:  "Sum the entries of a numeric sequence payload",
			Action: runKernel(runSum),
		},
		{
			Name:   "average",
			Usage:  "Average the entries of a numeric sequence payload",
			Action: runKernel(runAverage),
		},
	}
	return app
}

func runKernel(fn func(*chunkapi.ChunkKernelClient) (interface{}, error)) cli.ActionFunc {
	return func(appCtx *cli.Context) error {
		defer func() { _ = tracer.Close() }()

		kernelCli, err := getAPI(appCtx.GlobalString("kernel-api"), appCtx.GlobalDuration("dial-timeout"))
		if err != nil {
			return err
		}

		result, err := fn(kernelCli)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(result)
	}
}

func runElementwiseSquare(kernelCli *chunkapi.ChunkKernelClient) (interface{}, error) {
	seq, err := payload.DecodeNumericSequence(os.Stdin)
	if err != nil {
		return nil, err
	}
	return kernelCli.ElementwiseSquare(seq)
}

func runRangeSumOfSquares(kernelCli *chunkapi.ChunkKernelClient) (interface{}, error) {
	rng, err := payload.DecodeIntegerRange(os.Stdin)
	if err != nil {
		return nil, err
	}
	return kernelCli.RangeSumOfSquares(rng.Start, rng.End)
}

func runSum(kernelCli *chunkapi.ChunkKernelClient) (interface{}, error) {
	seq, err := payload.DecodeNumericSequence(os.Stdin)
	if err != nil {
		return nil, err
	}
	return kernelCli.Sum(seq)
}

func runAverage(kernelCli *chunkapi.ChunkKernelClient) (interface{}, error) {
	seq, err := payload.DecodeNumericSequence(os.Stdin)
	if err != nil {
		return nil, err
	}
	return kernelCli.Average(seq)
}

func getAPI(kernelAPI string, dialTimeout time.Duration) (*chunkapi.ChunkKernelClient, error) {
	if kernelAPI == "" {
		return nil, xerrors.Errorf("chunk kernel API must be specified with --kernel-api")
	}

	tr, err := tracer.GetTracer(appName)
	if err != nil {
		return nil, err
	}

	dialCtx, cancelFn := context.WithTimeout(context.Background(), dialTimeout)
	defer cancelFn()
	conn, err := grpc.DialContext(dialCtx, kernelAPI,
		grpc.WithInsecure(),
		grpc.WithBlock(),
		grpc.WithUnaryInterceptor(otgrpc.OpenTracingClientInterceptor(tr)),
	)
	if err != nil {
		return nil, xerrors.Errorf("could not connect to chunk kernel API: %w", err)
	}

	return chunkapi.NewChunkKernelClient(context.Background(), proto.NewChunkKernelClient(conn)), nil
}
