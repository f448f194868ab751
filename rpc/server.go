package rpc

// Server is implemented by both transports
type Server interface {
	Run() error
	Stop() error
	Address() string
}
