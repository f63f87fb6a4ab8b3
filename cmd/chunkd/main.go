package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/calcwork/chunkkernel/chunkapi"
	"github.com/calcwork/chunkkernel/chunkapi/proto"
	"github.com/calcwork/chunkkernel/httpapi"
	"github.com/calcwork/chunkkernel/tracer"
	"github.com/grpc-ecosystem/grpc-opentracing/go/otgrpc"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"google.golang.org/grpc"
)

var (
	appName = "chunkd"
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
		logger.WithField("err", err).Error("shutting down due to error")
		_ = os.Stderr.Sync()
		os.Exit(1)
	}
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSha
	app.Usage = "Serve the chunk kernel functions over gRPC and HTTP"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:   "grpc-port",
			Value:  8080,
			EnvVar: "GRPC_PORT",
			Usage:  "The port for exposing the gRPC chunk kernel API",
		},
		cli.IntFlag{
			Name:   "http-port",
			Value:  8081,
			EnvVar: "HTTP_PORT",
			Usage:  "The port for exposing the HTTP/JSON chunk kernel API and metrics",
		},
		cli.IntFlag{
			Name:   "pprof-port",
			Value:  6060,
			EnvVar: "PPROF_PORT",
			Usage:  "The port for exposing pprof endpoints",
		},
	}
	app.Action = runMain
	return app
}

func runMain(appCtx *cli.Context) error {
	var wg sync.WaitGroup
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()
	defer func() { _ = tracer.Close() }()

	tr, err := tracer.GetTracer(appName)
	if err != nil {
		return err
	}

	// Start gRPC server
	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%d", appCtx.Int("grpc-port")))
	if err != nil {
		return err
	}
	defer func() { _ = grpcListener.Close() }()

	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(otgrpc.OpenTracingServerInterceptor(tr)))
	proto.RegisterChunkKernelServer(grpcSrv, chunkapi.NewChunkKernelServer())

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.WithField("port", appCtx.Int("grpc-port")).Info("listening for gRPC connections")
		if err := grpcSrv.Serve(grpcListener); err != nil {
			logger.WithField("err", err).Error("gRPC server exited with error")
			cancelFn()
		}
	}()

	// Start HTTP/JSON API
	var httpCfg httpapi.Config
	httpCfg.ListenAddr = fmt.Sprintf(":%d", appCtx.Int("http-port"))
	httpCfg.Logger = logger
	httpSvc, err := httpapi.NewService(httpCfg)
	if err != nil {
		return err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := httpSvc.Run(ctx); err != nil {
			logger.WithField("err", err).Error("chunk API service exited with error")
			cancelFn()
		}
	}()

	// Start pprof server
	pprofListener, err := net.Listen("tcp", fmt.Sprintf(":%d", appCtx.Int("pprof-port")))
	if err != nil {
		return err
	}
	defer func() { _ = pprofListener.Close() }()

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.WithField("port", appCtx.Int("pprof-port")).Info("listening for pprof requests")
		srv := new(http.Server)
		_ = srv.Serve(pprofListener)
	}()

	// Start signal watcher
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			logger.WithField("signal", s.String()).Infof("shutting down due to signal")
			_ = pprofListener.Close()
			grpcSrv.GracefulStop()
			cancelFn()
		case <-ctx.Done():
			grpcSrv.GracefulStop()
			_ = pprofListener.Close()
		}
	}()

	// Keep running until we receive a signal
	wg.Wait()
	return nil
}
