package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"relaykit.dev/keyring/keyring/backendreg"
	"relaykit.dev/keyring/keyring/grpckeyring"
)

func main() {
	fs := flag.NewFlagSet("keyringd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7878", "listen address")
	backend := fs.String("backend", "memory", "key store backend name")
	listBackends := fs.Bool("list-backends", false, "List supported backends and exit")

	backendreg.RegisterFlags(fs, backendreg.UsageDaemon)

	_ = fs.Parse(os.Args[1:])
	if *listBackends {
		for _, b := range backendreg.List(backendreg.UsageDaemon) {
			if b.Description == "" {
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", b.Name)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", b.Name, b.Description)
		}
		return
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	store, closeFn, err := backendreg.Open(*backend, backendreg.UsageDaemon)
	if err != nil {
		logger.Fatal("open backend", zap.String("backend", *backend), zap.Error(err))
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		logger.Fatal("listen", zap.String("addr", *listen), zap.Error(err))
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpckeyring.RegisterKeyringServer(s, &grpckeyring.Server{Store: store})

	logger.Info("keyringd listening",
		zap.String("addr", lis.Addr().String()),
		zap.String("backend", *backend),
	)
	if err := s.Serve(lis); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}
