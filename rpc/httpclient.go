package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/rpc"

	"github.com/BrugadaSyndrome/bslogger"
)

type HttpClient struct {
	serverAddress string
	client        *rpc.Client

	Logger bslogger.Logger
	Name   string
}

func NewHttpClient(serverAddress string, name string) *HttpClient {
	return &HttpClient{
		serverAddress: serverAddress,
		Logger:        bslogger.NewLogger(name, bslogger.Normal, nil),
		Name:          name,
	}
}

func (hc *HttpClient) Connect() error {
	if hc.client != nil {
		hc.Logger.Warningf("Already connected to server at address %s", hc.serverAddress)
		return nil
	}

	var err error
	hc.client, err = rpc.DialHTTP("tcp", hc.serverAddress)
	if err != nil {
		hc.Logger.Errorf("Error connecting to server at address %s : %s", hc.serverAddress, err)
		return err
	}
	hc.Logger.Infof("Connected to server at %s", hc.serverAddress)
	return nil
}

func (hc *HttpClient) CallContext(ctx context.Context, method string, request interface{}, reply interface{}) error {
	if hc.client == nil {
		message := fmt.Sprintf("Not connected to server at address: %s, method: %s", hc.serverAddress, method)
		hc.Logger.Error(message)
		return errors.New(message)
	}

	err := callContext(ctx, hc.client, method, request, reply)
	if err != nil {
		hc.Logger.Errorf("Calling server at address %s : method %s - %s", hc.serverAddress, method, err)
		return err
	}
	hc.Logger.Debugf("Calling server %s", method)
	return nil
}

func (hc *HttpClient) Disconnect() error {
	if hc.client == nil {
		message := fmt.Sprintf("Already disconnected from server at address %s", hc.serverAddress)
		hc.Logger.Warning(message)
		return errors.New(message)
	}

	err := hc.client.Close()
	hc.client = nil
	if err != nil {
		hc.Logger.Errorf("Disconnecting from server at address %s", hc.serverAddress)
		return err
	}
	hc.Logger.Infof("Disconnected from server at %s", hc.serverAddress)
	return nil
}
