package worker

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/bytedance/sonic"

	"StripedMandelbrot/misc"
	"StripedMandelbrot/rpc"
)

const (
	TransportTcp  = "tcp"
	TransportHttp = "http"
)

type Settings struct {
	logger bslogger.Logger

	ServerAddress string
	Transport     string
}

// NewSettings reads the worker settings from settingsFile. An empty settingsFile uses the defaults.
func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: bslogger.NewLogger("WorkerSettings", bslogger.Normal, nil),
	}
	if settingsFile != "" {
		bytes, err := misc.ReadFile(settingsFile)
		misc.CheckError(err, s.logger, misc.Fatal)
		misc.CheckError(sonic.Unmarshal(bytes, &s), s.logger, misc.Fatal)
	}
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nWorker settings\n"
	output += fmt.Sprintf("Server Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Transport: %s\n", s.Transport)
	return output
}

func (s *Settings) Verify() error {
	if s.ServerAddress == "" {
		s.ServerAddress = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51001")
	}
	switch s.Transport {
	case "":
		s.Transport = TransportTcp
	case TransportTcp, TransportHttp:
	default:
		return fmt.Errorf("unknown transport %q", s.Transport)
	}
	return nil
}

// NewServer hosts w on the configured transport
func (s *Settings) NewServer(w *Worker) rpc.Server {
	if s.Transport == TransportHttp {
		return rpc.NewHttpServer(w, s.ServerAddress, "WorkerHttpServer")
	}
	return rpc.NewTcpServer(w, s.ServerAddress, "WorkerTcpServer")
}

// NewClient connects to a worker at address over transport
func NewClient(transport string, address string) rpc.Client {
	if transport == TransportHttp {
		return rpc.NewHttpClient(address, address)
	}
	return rpc.NewTcpClient(address, address)
}
