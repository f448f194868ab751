package rpc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/rpc"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

type HttpServer struct {
	address  string
	listener net.Listener
	mux      *http.ServeMux
	object   interface{}
	server   *http.Server

	Logger bslogger.Logger
	Name   string
}

func NewHttpServer(object interface{}, address string, name string) *HttpServer {
	return &HttpServer{
		address: address,
		mux:     http.NewServeMux(),
		object:  object,
		Logger:  bslogger.NewLogger(name, bslogger.Normal, nil),
		Name:    name,
	}
}

func (hs *HttpServer) Address() string {
	if hs.listener == nil {
		return hs.address
	}
	return hs.listener.Addr().String()
}

func (hs *HttpServer) Run() error {
	handler := rpc.NewServer()
	err := handler.Register(hs.object)
	if err != nil {
		hs.Logger.Error("Registering object")
		return err
	}

	// Serve rpc on this server's own mux rather than http.DefaultServeMux
	// https://github.com/golang/go/issues/13395
	hs.mux.Handle(rpc.DefaultRPCPath, handler)

	hs.listener, err = net.Listen("tcp", hs.address)
	if err != nil {
		hs.Logger.Errorf("Listening at address %s", hs.address)
		return err
	}

	// Start the server until a stop signal is received
	hs.server = &http.Server{Addr: hs.address, Handler: hs.mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := hs.server.Serve(hs.listener); !errors.Is(err, http.ErrServerClosed) {
			hs.Logger.Errorf("Error serving at address %s - %s", hs.Address(), err)
		}
	}()

	hs.Logger.Infof("Running server at address %s", hs.Address())
	return nil
}

func (hs *HttpServer) Stop() error {
	if hs.server == nil {
		return nil
	}
	if err := hs.server.Shutdown(context.Background()); err != nil {
		hs.Logger.Errorf("Shutting down server at address %s", hs.Address())
		return err
	}
	hs.Logger.Infof("Shutting down server at address %s", hs.Address())
	return nil
}
